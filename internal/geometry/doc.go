// Package geometry is the math kernel behind the eraser: local-to-world
// transforms, point-to-segment distance, bounding boxes, and the whole-shape
// hit tests for each drawing type.
//
// Every function is pure. Nothing here knows about erasure; callers decide
// what a hit means.
package geometry
