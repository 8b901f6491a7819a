// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggpick renders the pick buffer of a mesh.Scene on the CPU with gg.
//
// gg always anti-aliases, and a blended edge pixel decodes to an unrelated
// code. Renderer therefore uses gg only as a coverage rasterizer: each face
// group is filled in white on a transparent layer, and the pixels covered by
// at least half are written to the pick buffer in the group's pick color.
// The result holds nothing but exact pick colors and the background.
//
// Face groups are drawn back to front by the mean view depth of their
// vertices. There is no per-pixel depth test.
//
// # Usage
//
//	r := ggpick.New(800, 600)
//	defer r.Close()
//
//	buf, err := r.Render(scene, cam)
//	if err != nil {
//		return err
//	}
//	hit, ok, err := scene.Picker(buf).Pick(x, y)
//
// # Thread Safety
//
// Renderer is NOT safe for concurrent use.
package ggpick
