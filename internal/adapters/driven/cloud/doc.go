// Package cloud implements driven.ObjectStore for Amazon S3, Google Cloud
// Storage and Azure Blob Storage.
//
// Every transfer waits on a shared token bucket and is retried with
// exponential backoff when the provider reports a transient failure.
// A Factory builds the store selected by a domain.CloudConfig; stores from
// one Factory share its limiter.
package cloud
