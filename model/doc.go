/*
Package model is the in-memory transit network that an export run walks.

The model is produced upstream, already validated: cities with their raw map
elements, routes, route variants, stop areas and transfer groups. This package
does not check geometry; it only indexes it.

# Raw elements

Every city keeps its raw elements keyed by osmid.ElementID. An element's
Geometry is one of:

  - PointGeometry: a node coordinate
  - LineGeometry: a way, as ordered node refs
  - AreaGeometry: a relation, as ordered typed members

Elements.ResolveNodes turns any of them into its constituent nodes, which is
how platforms drawn as lines or areas are reduced to candidate exit points.

# Loading

LoadFile and Load decode a JSON network model:

	net, err := model.LoadFile("network.json")
	if err != nil {
	    log.Fatal().Err(err).Send()
	}
	for _, city := range net.Cities {
	    ...
	}

Elements use the Overpass JSON shape (type, id, lat/lon, nodes, members,
center, tags). Stop areas, routes and transfers refer to elements with the
compact id form ("n123", "w45", "r6").
*/
package model
