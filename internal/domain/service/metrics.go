package service

// MetricsRecorder receives business-level measurements from the use case layer.
type MetricsRecorder interface {
	// RecordLoginFailure counts a rejected login. reason is a small fixed set such as "invalid_credentials".
	RecordLoginFailure(reason string)

	// RecordUpload counts an accepted upload and its size in bytes.
	RecordUpload(bytes int64)

	// RecordSubmission counts a public submission by kind.
	RecordSubmission(kind string)
}
