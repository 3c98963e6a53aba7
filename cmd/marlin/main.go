package main

import (
	"flag"
	"log"

	"github.com/marlinengine/marlin"
)

var (
	out  = flag.String("out", "triangle.png", "output PNG path")
	size = flag.Int("size", 512, "image width and height in pixels")
)

// Renders the classic first triangle: pre-transformed clip-space positions
// with red, green and blue corners, no matrix anywhere.
func main() {
	flag.Parse()

	triangle := marlin.NewTriangle(
		marlin.Vertex{Position: marlin.V(0, 0.5, 0), Color: marlin.Color{R: 1}},
		marlin.Vertex{Position: marlin.V(-0.5, -0.5, 0), Color: marlin.Color{G: 1}},
		marlin.Vertex{Position: marlin.V(0.5, -0.5, 0), Color: marlin.Color{B: 1}},
	)

	object := marlin.NewTriangleObject([]*marlin.Triangle{triangle})
	object.UseVertexColor = true

	dc := marlin.NewContext(*size, *size, marlin.NewPassThroughShader())
	dc.ClearColor = marlin.Color{R: 0.1, G: 0.2, B: 0.3, A: 1}
	dc.ClearColorBuffer()
	dc.DrawObject(object)

	if err := marlin.SavePNG(*out, dc.Image()); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", *out)
}
