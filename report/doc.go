// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package report renders scenario outcomes as text, with counts and ranks
// formatted by go-humanize.
package report
