// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build dragonboxdebug

package dragonbox

// debugAsserts enables precondition checks on the extraction path.
const debugAsserts = true
