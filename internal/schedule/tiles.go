package schedule

import "math"

// BuildTiles partitions a width×height buffer into a grid of tiles sized
// to produce roughly jobs tiles, spec.md §4.9: edge count
// e = max(1, floor(sqrt(jobs))); horizontal step = max(1, width/e);
// vertical step = max(1, height/e); the last tile on each axis is clipped
// to the buffer edge instead of overshooting it.
func BuildTiles(width, height, jobs int) []*Tile {
	if width <= 0 || height <= 0 {
		return nil
	}

	e := int(math.Floor(math.Sqrt(float64(jobs))))
	if e < 1 {
		e = 1
	}

	stepX := width / e
	if stepX < 1 {
		stepX = 1
	}
	stepY := height / e
	if stepY < 1 {
		stepY = 1
	}

	tiles := make([]*Tile, 0, e*e)
	for ty := 0; ty < e; ty++ {
		minY := ty * stepY
		maxY := minY + stepY
		if ty == e-1 || maxY > height {
			maxY = height
		}
		for tx := 0; tx < e; tx++ {
			minX := tx * stepX
			maxX := minX + stepX
			if tx == e-1 || maxX > width {
				maxX = width
			}
			tiles = append(tiles, &Tile{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY})
		}
	}
	return tiles
}
