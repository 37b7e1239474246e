// Package models loads external vertex sets for blockshade. Only vertex
// positions are kept: the renderer draws the convex hull of the cloud.
package models

import (
	"github.com/taigrr/blockshade/pkg/math3d"
)

// PointCloud is an unordered set of model-space points.
type PointCloud struct {
	Name   string
	Points []math3d.Vec3

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// CalculateBounds computes the axis-aligned bounding box.
func (pc *PointCloud) CalculateBounds() {
	if len(pc.Points) == 0 {
		pc.BoundsMin, pc.BoundsMax = math3d.Vec3{}, math3d.Vec3{}
		return
	}

	pc.BoundsMin = pc.Points[0]
	pc.BoundsMax = pc.Points[0]

	for _, p := range pc.Points[1:] {
		pc.BoundsMin = pc.BoundsMin.Min(p)
		pc.BoundsMax = pc.BoundsMax.Max(p)
	}
}

// Center returns the center of the bounding box.
func (pc *PointCloud) Center() math3d.Vec3 {
	return pc.BoundsMin.Add(pc.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (pc *PointCloud) Size() math3d.Vec3 {
	return pc.BoundsMax.Sub(pc.BoundsMin)
}

// Normalize recenters the cloud on the origin and scales it uniformly so its
// largest dimension spans 2 units, matching the built-in shapes.
func (pc *PointCloud) Normalize() {
	pc.CalculateBounds()
	center := pc.Center()
	size := pc.Size()
	maxDim := max(size.X, size.Y, size.Z)
	if maxDim == 0 {
		return
	}

	scale := 2.0 / maxDim
	for i, p := range pc.Points {
		pc.Points[i] = p.Sub(center).Scale(scale)
	}
	pc.CalculateBounds()
}

// Len returns the number of points.
func (pc *PointCloud) Len() int {
	return len(pc.Points)
}
