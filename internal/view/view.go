// Package view implements the pass-through pipeline stages that
// visualize samples: a column inspector printing type and statistics
// reports, a grid image viewer, and an annotated image viewer. Every
// stage returns its input element unchanged; display and printing are
// side effects only.
package view

import "errors"

// ErrLayout indicates a grid layout whose row*col count does not match
// the number of configured image columns. It is returned before any
// display surface is allocated.
var ErrLayout = errors.New("view: number of images and layout don't match")

// ErrNoImageColumns indicates a viewer constructed without any image
// column.
var ErrNoImageColumns = errors.New("view: no image columns configured")
