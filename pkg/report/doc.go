// Package report defines the wire format of a maze search.
//
// A [Report] is what leaves the process: JSON files written by the CLI, API
// responses, cached results and stored runs all share it. The package sits at
// the serialization boundary between the generic engine in pkg/search and
// the outside world:
//
//   - [FromResult] converts a search.Result over a maze into a Report
//   - [Marshal], [Write], [WriteFile] encode it
//   - [Unmarshal], [Read], [ReadFile] decode it
//   - [Report.Validate] replays a decoded report against its own grid
//
// # Format
//
//	{
//	  "algorithm": "astar",
//	  "heuristic": "manhattan",
//	  "found": true,
//	  "width": 4, "height": 1,
//	  "start": {"row": 0, "col": 0},
//	  "goal": {"row": 0, "col": 3},
//	  "path": [{"row": 0, "col": 1, "action": "right"}, ...],
//	  "cost": 3,
//	  "explored": [{"row": 0, "col": 0}, ...],
//	  "removed": 4,
//	  "maze": "A  B\n"
//	}
//
// The path excludes the start cell. "explored" lists every expanded cell
// once, in expansion order; "removed" also counts the goal removal.
package report
