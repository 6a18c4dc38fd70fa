package utils

import "sync"

var gdalMu sync.Mutex

// ExecuteWithGDALLock serializes access to GDAL dataset handles. Tile
// pipelines run in parallel, but raster open/read/write goes through this
// single lock; model inference stays outside it.
func ExecuteWithGDALLock(fn func()) {
	gdalMu.Lock()
	defer gdalMu.Unlock()
	fn()
}
