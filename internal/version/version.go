// ABOUTME: Version constants
// ABOUTME: Identifies the tool in CLI output
package version

const (
	Version = "0.1.0"
	Product = "ectokit"
)
