// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the labels API.
//
// An [App] parses a subcommand (list, create, delete, update, version) and
// its flags, performs the call through an [adapter.LabelsClient] and prints
// the JSON result.
package client
