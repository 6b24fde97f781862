package domain

import "fmt"

type SourceType string

const (
	SourceFile SourceType = "file"
	SourceHTTP SourceType = "http"
	SourceS3   SourceType = "s3"
)

// Environment names one monitored deployment and where its analyzer report
// lives. Profiles come from the .cloudinsightcfg registry.
type Environment struct {
	Name   string
	Source SourceType

	// Path is set for file sources, URL for http sources.
	Path string
	URL  string

	// S3 location. UseDatePrefix prepends yyyy/mm/dd to the key, matching
	// the analyzer's upload layout.
	Bucket        string
	Key           string
	Region        string
	UseDatePrefix bool
}

func (e Environment) String() string {
	return fmt.Sprintf("%s:%s", e.Source, e.Name)
}
