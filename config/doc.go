// Package config holds the Constraint Configuration and Market Scenarios
// shared by every solver: documented defaults, a TOML loader and range
// validation. Values are built once and passed explicitly; nothing here is
// global.
//
// Example file:
//
//	target_skill_id    = "S6"
//	max_time           = 350
//	max_complexity     = 30
//	relax              = true
//	monte_carlo_trials = 1000
//	seed               = 42
//	critical_skill_ids = ["S3", "S5", "S7", "S8", "S9"]
//	min_adaptability   = 15
//	profile            = ["H1", "H2", "H3"]
//	horizon_hours      = 10000
//	discount_factor    = 0.95
//
//	[[scenario]]
//	name        = "ai_boom"
//	probability = 0.6
//	skill_multipliers = { S6 = 1.5, S4 = 1.3 }
//
//	[[scenario]]
//	name        = "steady"
//	probability = 0.4
//	category_multipliers = { basic = 1.1 }
package config
