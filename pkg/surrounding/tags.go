package surrounding

func set(values ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return m
}

var (
	nodeTags = map[string]map[string]struct{}{
		"tourism": set("viewpoint", "alpine_hut", "attraction", "picnic_site"),
		"man_made": set("cairn", "cross", "lighthouse", "mineshaft", "obelisk",
			"observatory", "watermill", "windmill"),
		"historic": set("memorial", "archaeological_site", "wayside_cross",
			"ruins", "wayside_shrine", "monument", "building",
			"castle", "heritage", "church", "fort", "city_gate",
			"house", "wreck", "cannon", "aircraft", "farm", "tower",
			"monastery", "locomotive", "ship", "tank", "railway_car"),
	}

	// natural and landuse areas only count above MIN_INTERESTING_AREA_SQM
	areaTags = map[string]map[string]struct{}{
		"natural": set("water", "grassland", "heath", "wood", "bay",
			"beach", "coastline", "dune"),
		"landuse": set("farmland", "forest", "flowerbed", "meadow", "orchard",
			"plant_nursery", "vineyard", "grass"),
	}

	wayTags = map[string]map[string]struct{}{
		"tourism":  set("alpine_hut", "attraction", "picnic_site"),
		"man_made": set("cairn", "obelisk", "observatory", "watermill", "windmill"),
		"historic": set("memorial", "archaeological_site", "ruins",
			"wayside_shrine", "monument", "building",
			"castle", "heritage", "church", "fort",
			"city_gate", "house", "hollow_way", "wreck", "aircraft",
			"farm", "tower", "monastery", "bridge", "aqueduct",
			"locomotive", "ship", "tank", "railway_car"),
	}
)
