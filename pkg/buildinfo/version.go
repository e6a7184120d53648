// Package buildinfo reports which mazesearch build is running.
//
// The variables are stamped by the linker:
//
//	go build -ldflags "-X github.com/matzehuels/mazesearch/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/mazesearch/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/mazesearch/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// The CLI prints them for --version and the HTTP API returns them from
// /healthz.
package buildinfo

import "fmt"

var (
	Version = "dev"     // semantic version, e.g. "v1.2.3"
	Commit  = "none"    // git commit SHA
	Date    = "unknown" // build timestamp, RFC 3339
)

// shortCommit is the length of an abbreviated commit SHA.
const shortCommit = 7

// Info is a snapshot of the build variables.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"built"`
}

// Get returns the current build variables with the commit abbreviated.
func Get() Info {
	commit := Commit
	if len(commit) > shortCommit {
		commit = commit[:shortCommit]
	}
	return Info{Version: Version, Commit: commit, Date: Date}
}

// Template returns the version template string for cobra.
func Template() string {
	i := Get()
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", i.Version, i.Commit, i.Date)
}
