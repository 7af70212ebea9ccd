// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the admin client application runtime.
//
// It wires the terminal inbox and the client services into a single process
// lifecycle.
package client
