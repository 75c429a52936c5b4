package domain

// RawWeapon is one row of the weapon sheet. WeaponType is a free-text label
// with historically inconsistent spellings ("Handgun", "Multiple Handguns",
// "Mulitiple Handguns" all occur in the source data).
type RawWeapon struct {
	IncidentID   string `json:"incident_id"`
	WeaponType   string `json:"weapon_type"`
	WeaponDetail string `json:"weapon_detail,omitempty"`
}

// WeaponCounts is the per-incident weapon aggregate after the raw label
// vocabulary has been collapsed into the three canonical buckets.
type WeaponCounts struct {
	Handguns int `json:"handguns"`
	Rifles   int `json:"rifles"`
	Other    int `json:"other"`
	Total    int `json:"total_weapons"`
}
