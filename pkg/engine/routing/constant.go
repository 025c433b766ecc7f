package routing

const (
	DEFAULT_LEG_CACHE_SIZE = 1 << 16 // 65536 legs
)
