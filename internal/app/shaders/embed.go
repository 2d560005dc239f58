// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// PhongVertexShader is the vertex shader for primitive rendering.
//
//go:embed phong.vert
var PhongVertexShader string

// PhongFragmentShader is the fragment shader for primitive rendering.
//
//go:embed phong.frag
var PhongFragmentShader string

// LineVertexShader is the vertex shader for overlay line rendering.
//
//go:embed line.vert
var LineVertexShader string

// LineFragmentShader is the fragment shader for overlay line rendering.
//
//go:embed line.frag
var LineFragmentShader string
