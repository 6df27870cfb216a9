package vars

import (
	"nightlife-booking/model"
	"sync/atomic"
	"unsafe"
)

// provinceDataPtr holds a pointer to the current province list snapshot.
// This approach allows for lock-free reads with atomic updates.
var provinceDataPtr unsafe.Pointer

// GetProvinces returns the current province snapshot.
// This operation is lock-free and safe for concurrent access.
func GetProvinces() []model.Province {
	ptr := atomic.LoadPointer(&provinceDataPtr)
	if ptr == nil {
		return nil
	}
	return *(*[]model.Province)(ptr)
}

// SetProvinces atomically updates the province snapshot.
// It creates a copy of the input data to ensure consistency.
// Pass nil or empty slice to clear the snapshot.
func SetProvinces(provinces []model.Province) {
	var ptr unsafe.Pointer

	if len(provinces) > 0 {
		provincesCopy := make([]model.Province, len(provinces))
		copy(provincesCopy, provinces)
		ptr = unsafe.Pointer(&provincesCopy)
	}

	atomic.StorePointer(&provinceDataPtr, ptr)
}

func init() {
	atomic.StorePointer(&provinceDataPtr, nil)
}
