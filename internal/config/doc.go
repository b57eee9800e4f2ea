// Package config provides configuration loading, merging, and validation
// facilities for the labels service and its client.
//
// Server configuration is assembled from multiple sources; later sources
// override non-zero fields of earlier ones:
//  1. JSON config file
//  2. Environment variables
//  3. Command-line flags
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the command-line client.
package config
