package model

// Modes an element can declare with <mode>=yes.
var allModes = []string{"subway", "light_rail", "monorail", "train", "tram"}

var constructionKeys = []string{
	"construction",
	"proposed",
	"construction:railway",
	"proposed:railway",
}

// IsStation reports whether el is an acceptable station for this city.
// public_transport=station alone is too ambiguous; a railway tag must back it.
func (c *City) IsStation(el *Element) bool {
	if el == nil {
		return false
	}
	railway := el.Tags.Find("railway")
	if c.HasMode("tram") && railway == "tram_stop" {
		return true
	}
	if railway != "station" && railway != "halt" {
		return false
	}
	for _, k := range constructionKeys {
		if el.Tags.HasTag(k) {
			return false
		}
	}
	if c.HasMode("train") {
		return true
	}
	for _, m := range StationModes(el) {
		if c.HasMode(m) {
			return true
		}
	}
	return false
}

// StationModes lists the modes a station element declares.
func StationModes(el *Element) []string {
	var modes []string
	if m := el.Tags.Find("station"); m != "" {
		modes = append(modes, m)
	}
	for _, m := range allModes {
		if el.Tags.Find(m) == "yes" {
			modes = append(modes, m)
		}
	}
	return modes
}
