// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive reveal client runtime.
//
// It wires the bundle source, the reveal pipeline and the terminal UI into
// a single process lifecycle.
package client
