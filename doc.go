// Package lvroute is a time-budgeted route/value optimizer over small tunnel
// networks.
//
// Nodes carry a per-minute reward rate and are joined by unit-length
// tunnels. An actor starts at a source node with T minutes; moving costs one
// minute per tunnel and activating a node costs one minute, after which the
// node pays its rate for every remaining minute. lvroute answers:
//
//	solo   the best total one actor can release in T minutes
//	duo    the best total two actors can release when they never activate
//	       the same node
//
// Layout:
//
//	network/         node/tunnel model, report and YAML parsers
//	distance/        all-pairs hop distances (Floyd–Warshall) and BFS cross-check
//	explore/         branch-and-bound state search with a bounded frontier
//	pairing/         best disjoint pair over frontier entries
//	solver/          solo/duo runs with logging, metrics and tracing
//	observability/   slog and OpenTelemetry helpers
//	config/          YAML + LVROUTE_* environment configuration
//	cmd/lvroute/     command-line interface
package lvroute
