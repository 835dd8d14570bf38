package converter

const (
	// EntrancePenalty is added to every walk between an entrance and a platform, in seconds.
	EntrancePenalty = 60
	// TransferPenalty is added to every transfer walk, in seconds.
	TransferPenalty = 30

	// Speeds in km/h.
	SpeedToEntrance = 5.0
	SpeedOnTransfer = 3.5
	SpeedOnLine     = 40.0

	// DefaultInterval is the headway of variants without one, in minutes.
	DefaultInterval = 2.5
)
