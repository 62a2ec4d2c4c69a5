// Package builder defines shared constants used by mesh constructors.
package builder

// Constructor names used as error prefixes.
const (
	MethodTriangle   = "Triangle"
	MethodPolygon    = "Polygon"
	MethodGrid       = "Grid"
	MethodFan        = "Fan"
	MethodBowtie     = "Bowtie"
	MethodRandomSoup = "RandomSoup"
	MethodBuildMesh  = "BuildMesh"
)

// MinGridDim is the smallest number of rows or columns of a Grid.
const MinGridDim = 1

// MinFanTriangles is the smallest triangle count of a Fan.
const MinFanTriangles = 1

// MinPolygonCorners is the smallest corner count of a Polygon.
const MinPolygonCorners = 3

// MinSoupPool is the smallest point pool a RandomSoup can draw a triangle from.
const MinSoupPool = 3
