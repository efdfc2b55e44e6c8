package schema

// This file enumerates every sparse-discriminant enum in the legacy
// save format. Each is a package-level *EnumDef whose Variants table
// was read directly off the original enum class's underlying values,
// preserving gaps rather than renumbering them contiguously.

var Cargo4Bit = &EnumDef[uint8]{
	Name: "cargo_4bit_type",
	Variants: []EnumVariant[uint8]{
		{0b0000, "food", "food"},
		{0b0001, "sugar", "sugar"},
		{0b0010, "tobacco", "tobacco"},
		{0b0011, "cotton", "cotton"},
		{0b0100, "furs", "furs"},
		{0b0101, "lumber", "lumber"},
		{0b0110, "ore", "ore"},
		{0b0111, "silver", "silver"},
		{0b1000, "horses", "horses"},
		{0b1001, "rum", "rum"},
		{0b1010, "cigars", "cigars"},
		{0b1011, "cloth", "cloth"},
		{0b1100, "coats", "coats"},
		{0b1101, "goods", "trade_goods"},
		{0b1110, "tools", "tools"},
		{0b1111, "muskets", "muskets"},
	},
}

var Control = &EnumDef[uint8]{
	Name: "control_type",
	Variants: []EnumVariant[uint8]{
		{0x00, "player", "player"},
		{0x01, "ai", "ai"},
		{0x02, "withdrawn", "withdrawn"},
	},
}

var Difficulty = &EnumDef[uint8]{
	Name: "difficulty_type",
	Variants: []EnumVariant[uint8]{
		{0x00, "discoverer", "discoverer"},
		{0x01, "explorer", "explorer"},
		{0x02, "conquistador", "conquistador"},
		{0x03, "governor", "governor"},
		{0x04, "viceroy", "viceroy"},
	},
}

var EndOfTurnSign = &EnumDef[uint16]{
	Name: "end_of_turn_sign_type",
	Variants: []EnumVariant[uint16]{
		{0x0000, "not_shown", "not_shown"},
		{0x0001, "flashing", "flashing"},
	},
}

var FortificationLevel = &EnumDef[uint8]{
	Name: "fortification_level_type",
	Variants: []EnumVariant[uint8]{
		{0x00, "none", "none"},
		{0x01, "stockade", "stockade"},
		{0x02, "fort", "fort"},
		{0x03, "fortress", "fortress"},
	},
}

var HasCity1Bit = &EnumDef[uint8]{
	Name: "has_city_1bit_type",
	Variants: []EnumVariant[uint8]{
		{0b0, "empty", "empty"},
		{0b1, "c", "c"},
	},
}

var HasUnit1Bit = &EnumDef[uint8]{
	Name: "has_unit_1bit_type",
	Variants: []EnumVariant[uint8]{
		{0b0, "empty", "empty"},
		{0b1, "u", "u"},
	},
}

var HillsRiver3Bit = &EnumDef[uint8]{
	Name: "hills_river_3bit_type",
	Variants: []EnumVariant[uint8]{
		{0b000, "empty", "empty"},
		{0b001, "c", "c"},
		{0b010, "t", "t"},
		{0b011, "tc", "tc"},
		{0b100, "qq", "qq"},
		{0b101, "cc", "cc"},
		{0b110, "tt", "tt"},
	},
}

var Level2Bit = &EnumDef[uint8]{
	Name: "level_2bit_type",
	Variants: []EnumVariant[uint8]{
		{0b00, "_0", "_0"},
		{0b01, "_1", "_1"},
		{0b11, "_2", "_2"},
	},
}

var Level3Bit = &EnumDef[uint8]{
	Name: "level_3bit_type",
	Variants: []EnumVariant[uint8]{
		{0b000, "_0", "_0"},
		{0b001, "_1", "_1"},
		{0b011, "_2", "_2"},
		{0b111, "_3", "_3"},
	},
}

var Nation2Byte = &EnumDef[uint16]{
	Name: "nation_2byte_type",
	Variants: []EnumVariant[uint16]{
		{0x0000, "england", "england"},
		{0x0001, "france", "france"},
		{0x0002, "spain", "spain"},
		{0x0003, "netherlands", "netherlands"},
		{0x0004, "inca", "inca"},
		{0x0005, "aztec", "aztec"},
		{0x0006, "arawak", "arawak"},
		{0x0007, "iroquois", "iroquois"},
		{0x0008, "cherokee", "cherokee"},
		{0x0009, "apache", "apache"},
		{0x000A, "sioux", "sioux"},
		{0x000B, "tupi", "tupi"},
		{0xFFFF, "none", "none"},
	},
}

var Nation4BitShort = &EnumDef[uint8]{
	Name: "nation_4bit_short_type",
	Variants: []EnumVariant[uint8]{
		{0b0000, "en", "en"},
		{0b0001, "fr", "fr"},
		{0b0010, "sp", "sp"},
		{0b0011, "nl", "nl"},
		{0b0100, "in", "in"},
		{0b0101, "az", "az"},
		{0b0110, "aw", "aw"},
		{0b0111, "ir", "ir"},
		{0b1000, "ch", "ch"},
		{0b1001, "ap", "ap"},
		{0b1010, "si", "si"},
		{0b1011, "tu", "tu"},
		{0b1111, "empty", "empty"},
	},
}

var Nation4Bit = &EnumDef[uint8]{
	Name: "nation_4bit_type",
	Variants: []EnumVariant[uint8]{
		{0b0000, "england", "england"},
		{0b0001, "france", "france"},
		{0b0010, "spain", "spain"},
		{0b0011, "netherlands", "netherlands"},
		{0b0100, "inca", "inca"},
		{0b0101, "aztec", "aztec"},
		{0b0110, "arawak", "arawak"},
		{0b0111, "iroquois", "iroquois"},
		{0b1000, "cherokee", "cherokee"},
		{0b1001, "apache", "apache"},
		{0b1010, "sioux", "sioux"},
		{0b1011, "tupi", "tupi"},
		{0b1111, "none", "none"},
	},
}

var Nation = &EnumDef[uint8]{
	Name: "nation_type",
	Variants: []EnumVariant[uint8]{
		{0x00, "england", "england"},
		{0x01, "france", "france"},
		{0x02, "spain", "spain"},
		{0x03, "netherlands", "netherlands"},
		{0x04, "inca", "inca"},
		{0x05, "aztec", "aztec"},
		{0x06, "arawak", "arawak"},
		{0x07, "iroquois", "iroquois"},
		{0x08, "cherokee", "cherokee"},
		{0x09, "apache", "apache"},
		{0x0A, "sioux", "sioux"},
		{0x0B, "tupi", "tupi"},
		{0xFF, "none", "none"},
	},
}

var Occupation = &EnumDef[uint8]{
	Name: "occupation_type",
	Variants: []EnumVariant[uint8]{
		{0x00, "farmer", "farmer"},
		{0x01, "sugar_planter", "sugar_planter"},
		{0x02, "tobacco_planter", "tobacco_planter"},
		{0x03, "cotton_planter", "cotton_planter"},
		{0x04, "fur_trapper", "fur_trapper"},
		{0x05, "lumberjack", "lumberjack"},
		{0x06, "ore_miner", "ore_miner"},
		{0x07, "silver_miner", "silver_miner"},
		{0x08, "fisherman", "fisherman"},
		{0x09, "distiller", "distiller"},
		{0x0A, "tobacconist", "tobacconist"},
		{0x0B, "weaver", "weaver"},
		{0x0C, "fur_trader", "fur_trader"},
		{0x0D, "carpenter", "carpenter"},
		{0x0E, "blacksmith", "blacksmith"},
		{0x0F, "gunsmith", "gunsmith"},
		{0x10, "preacher", "preacher"},
		{0x11, "statesman", "statesman"},
		{0x12, "teacher", "teacher"},
		{0x13, "none", "none"},
	},
}

var Orders = &EnumDef[uint8]{
	Name: "orders_type",
	Variants: []EnumVariant[uint8]{
		{0x00, "none", "none"},
		{0x01, "sentry", "sentry"},
		{0x02, "trading", "trading"},
		{0x03, "goto", "goto"},
		{0x05, "fortify", "fortify"},
		{0x06, "fortified", "fortified"},
		{0x08, "plow", "plow"},
		{0x09, "road", "road"},
		{0x0A, "unknowna", "unknowna"},
		{0x0B, "unknownb", "unknownb"},
		{0x0C, "unknownc", "unknownc"},
	},
}

var Pacific1Bit = &EnumDef[uint8]{
	Name: "pacific_1bit_type",
	Variants: []EnumVariant[uint8]{
		{0b0, "empty", "empty"},
		{0b1, "t", "t"},
	},
}

var Plowed1Bit = &EnumDef[uint8]{
	Name: "plowed_1bit_type",
	Variants: []EnumVariant[uint8]{
		{0b0, "empty", "empty"},
		{0b1, "h", "h"},
	},
}

var Profession = &EnumDef[uint8]{
	Name: "profession_type",
	Variants: []EnumVariant[uint8]{
		{0x00, "expert_farmer", "expert_farmer"},
		{0x01, "master_sugar_planter", "master_sugar_planter"},
		{0x02, "master_tobacco_planter", "master_tobacco_planter"},
		{0x03, "master_cotton_planter", "master_cotton_planter"},
		{0x04, "expert_fur_trapper", "expert_fur_trapper"},
		{0x05, "expert_lumberjack", "expert_lumberjack"},
		{0x06, "expert_ore_miner", "expert_ore_miner"},
		{0x07, "expert_silver_miner", "expert_silver_miner"},
		{0x08, "expert_fisherman", "expert_fisherman"},
		{0x09, "master_distiller", "master_distiller"},
		{0x0A, "master_tobacconist", "master_tobacconist"},
		{0x0B, "master_weaver", "master_weaver"},
		{0x0C, "master_fur_trader", "master_fur_trader"},
		{0x0D, "master_carpenter", "master_carpenter"},
		{0x0E, "master_blacksmith", "master_blacksmith"},
		{0x0F, "master_gunsmith", "master_gunsmith"},
		{0x10, "firebrand_preacher", "firebrand_preacher"},
		{0x11, "elder_statesman", "elder_statesman"},
		{0x12, "expert_teacher", "expert_teacher"},
		{0x13, "free_colonist", "free_colonist"},
		{0x14, "hardy_pioneer", "hardy_pioneer"},
		{0x15, "veteran_soldier", "veteran_soldier"},
		{0x16, "seasoned_scout", "seasoned_scout"},
		{0x17, "veteran_dragoon", "veteran_dragoon"},
		{0x18, "jesuit_missionary", "jesuit_missionary"},
		{0x19, "indentured_servant", "indentured_servant"},
		{0x1A, "petty_criminal", "petty_criminal"},
		{0x1B, "indian_convert", "indian_convert"},
		{0x1C, "free_colonist_unspecialized", "free_colonist_unspecialized"},
	},
}

var Purchased1Bit = &EnumDef[uint8]{
	Name: "purchased_1bit_type",
	Variants: []EnumVariant[uint8]{
		{0b0, "empty", "empty"},
		{0b1, "a", "a"},
	},
}

var RegionID4Bit = &EnumDef[uint8]{
	Name: "region_id_4bit_type",
	Variants: []EnumVariant[uint8]{
		{0b0000, "_0", "_0"}, {0b0001, "_1", "_1"}, {0b0010, "_2", "_2"}, {0b0011, "_3", "_3"},
		{0b0100, "_4", "_4"}, {0b0101, "_5", "_5"}, {0b0110, "_6", "_6"}, {0b0111, "_7", "_7"},
		{0b1000, "_8", "_8"}, {0b1001, "_9", "_9"}, {0b1010, "_10", "_10"}, {0b1011, "_11", "_11"},
		{0b1100, "_12", "_12"}, {0b1101, "_13", "_13"}, {0b1110, "_14", "_14"}, {0b1111, "_15", "_15"},
	},
}

var Relation3Bit = &EnumDef[uint8]{
	Name: "relation_3bit_type",
	Variants: []EnumVariant[uint8]{
		{0b000, "self_vanished_not_met", "self_vanished_not_met"},
		{0b010, "war", "war"},
		{0b100, "post_granted_independence", "post_granted_independence"},
		{0b110, "peace", "peace"},
	},
}

var Road1Bit = &EnumDef[uint8]{
	Name: "road_1bit_type",
	Variants: []EnumVariant[uint8]{
		{0b0, "empty", "empty"},
		{0b1, "e", "e"},
	},
}

var Season = &EnumDef[uint16]{
	Name: "season_type",
	Variants: []EnumVariant[uint16]{
		{0x0000, "spring", "spring"},
		{0x0001, "autumn", "autumn"},
	},
}

var Suppress1Bit = &EnumDef[uint8]{
	Name: "suppress_1bit_type",
	Variants: []EnumVariant[uint8]{
		{0b0, "empty", "empty"},
		{0b1, "suppressed", "suppressed"},
	},
}

var Tech = &EnumDef[uint8]{
	Name: "tech_type",
	Variants: []EnumVariant[uint8]{
		{0x00, "semi_nomadic", "semi_nomadic"},
		{0x01, "agrarian", "agrarian"},
		{0x02, "advanced", "advanced"},
		{0x03, "civilized", "civilized"},
	},
}

var Terrain5Bit = &EnumDef[uint8]{
	Name: "terrain_5bit_type",
	Variants: []EnumVariant[uint8]{
		{0b00000, "tu", "tu"}, {0b00001, "de", "de"}, {0b00010, "pl", "pl"}, {0b00011, "pr", "pr"},
		{0b00100, "gr", "gr"}, {0b00101, "sa", "sa"}, {0b00110, "mr", "mr"}, {0b00111, "sw", "sw"},
		{0b01000, "tuf", "tuf"}, {0b01001, "def", "def"}, {0b01010, "plf", "plf"}, {0b01011, "prf", "prf"},
		{0b01100, "grf", "grf"}, {0b01101, "saf", "saf"}, {0b01110, "mrf", "mrf"}, {0b01111, "swf", "swf"},
		{0b10000, "tuw", "tuw"}, {0b10001, "dew", "dew"}, {0b10010, "plw", "plw"}, {0b10011, "prw", "prw"},
		{0b10100, "grw", "grw"}, {0b10101, "saw", "saw"}, {0b10110, "mrw", "mrw"}, {0b10111, "sww", "sww"},
		{0b11000, "arc", "arc"}, {0b11001, "ttt", "ttt"}, {0b11010, "tnt", "tnt"},
	},
}

var TradeRouteKind = &EnumDef[uint8]{
	Name: "trade_route_type",
	Variants: []EnumVariant[uint8]{
		{0x00, "land", "land"},
		{0x01, "sea", "sea"},
	},
}

var Unit = &EnumDef[uint8]{
	Name: "unit_type",
	Variants: []EnumVariant[uint8]{
		{0x00, "colonist", "colonist"},
		{0x01, "soldier", "soldier"},
		{0x02, "pioneer", "pioneer"},
		{0x03, "missionary", "missionary"},
		{0x04, "dragoon", "dragoon"},
		{0x05, "scout", "scout"},
		{0x06, "tory_regular", "tory_regular"},
		{0x07, "continental_cavalry", "continental_cavalry"},
		{0x08, "tory_cavalry", "tory_cavalry"},
		{0x09, "continental_army", "continental_army"},
		{0x0A, "treasure", "treasure"},
		{0x0B, "artillery", "artillery"},
		{0x0C, "wagon_train", "wagon_train"},
		{0x0D, "caravel", "caravel"},
		{0x0E, "merchantman", "merchantman"},
		{0x0F, "galleon", "galleon"},
		{0x10, "privateer", "privateer"},
		{0x11, "frigate", "frigate"},
		{0x12, "man_o_war", "man_o_war"},
		{0x13, "brave", "brave"},
		{0x14, "armed_brave", "armed_brave"},
		{0x15, "mounted_brave", "mounted_brave"},
		{0x16, "mounted_warrior", "mounted_warrior"},
	},
}

var VisibleToDutch1Bit = &EnumDef[uint8]{
	Name:     "visible_to_dutch_1bit_type",
	Variants: []EnumVariant[uint8]{{0b0, "empty", "empty"}, {0b1, "d", "d"}},
}

var VisibleToEnglish1Bit = &EnumDef[uint8]{
	Name:     "visible_to_english_1bit_type",
	Variants: []EnumVariant[uint8]{{0b0, "empty", "empty"}, {0b1, "e", "e"}},
}

var VisibleToFrench1Bit = &EnumDef[uint8]{
	Name:     "visible_to_french_1bit_type",
	Variants: []EnumVariant[uint8]{{0b0, "empty", "empty"}, {0b1, "f", "f"}},
}

var VisibleToSpanish1Bit = &EnumDef[uint8]{
	Name:     "visible_to_spanish_1bit_type",
	Variants: []EnumVariant[uint8]{{0b0, "empty", "empty"}, {0b1, "s", "s"}},
}

var YesNoByte = &EnumDef[uint8]{
	Name: "yes_no_byte",
	Variants: []EnumVariant[uint8]{
		{0x00, "no", "no"},
		{0x01, "yes", "yes"},
	},
}
