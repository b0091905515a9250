// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

// +build !debug

package assert

const debugEnabled = false
