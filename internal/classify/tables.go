package classify

// DefaultServiceTable returns the service-level grouping for API categories.
// Declaration order is the render order of the service groups.
func DefaultServiceTable() Table {
	return Table{
		{Name: "Core Services", Members: []string{
			"Access Control",
			"Camera",
			"Door",
			"Door Controller",
			"Doorbell Camera",
			"User",
			"Users",
			"Badge Reader",
			"Sensor",
			"Climate",
			"Button",
			"Relay",
			"Media Device",
		}},
		{Name: "Events & Monitoring", Members: []string{
			"Event",
			"Events",
			"Event Search",
			"Alert Monitoring",
			"Face Recognition Event",
			"Face Recognition Matchmaker",
			"Face Recognition Person",
			"Proximity",
			"Occupancy",
		}},
		{Name: "Integrations", Members: []string{
			"Access Control Integrations",
			"Service Management Integrations",
			"Incident Management Integrations",
			"IoT Integrations",
			"Storage Integrations",
			"Webhook Integrations",
			"Org Integrations",
			"Integrations",
		}},
		{Name: "Organization & Management", Members: []string{
			"Organization",
			"Org",
			"Location",
			"Locations",
			"Customer",
			"Partner",
			"License",
			"Permission",
			"User Metadata",
		}},
		{Name: "Security & Access", Members: []string{
			"OAuth",
			"Alarm Monitoring Keypad",
			"Guest Management Kiosk",
			"Lockdown Plan",
			"RapidSOS",
		}},
		{Name: "Media & Video", Members: []string{
			"Video",
			"Export",
			"AudioGateway",
			"AudioPlayback",
			"TvOS Config",
		}},
		{Name: "Automation & Rules", Members: []string{
			"Rules",
			"Rules Records",
			"Schedule",
			"Policies",
			"Policy",
		}},
		{Name: "Device Management", Members: []string{
			"Device Config",
			"Component",
			"Components",
			"BLE",
		}},
		{Name: "Data & Reporting", Members: []string{
			"Report",
			"Reports",
			"Search",
			"Logistics",
			"Vehicle",
			"Vehicles",
		}},
		{Name: "Developer & System", Members: []string{
			"Developer",
			"Feature",
			"Help",
			"Upload",
		}},
	}
}

// DefaultActionGroups returns the accordion buckets in render order, with
// the keywords that route a page stem into each.
func DefaultActionGroups() []ActionGroup {
	return []ActionGroup{
		{Name: "Create & Add", Keywords: []string{"create", "add", "upload", "generate", "initiate", "calibrate"}},
		{Name: "Get & Find", Keywords: []string{"get", "find", "search", "list"}},
		{Name: "Update & Modify", Keywords: []string{"update", "edit", "modify", "assign", "remove", "revoke", "suspend", "unsuspend"}},
		{Name: "Delete & Remove", Keywords: []string{"delete", "erase"}},
	}
}

// DefaultActionIcons maps action verbs to icons, matched by prefix.
func DefaultActionIcons() []IconRule {
	return []IconRule{
		{Key: "create", Icon: "square-plus"},
		{Key: "add", Icon: "user-plus"},
		{Key: "upload", Icon: "cloud-arrow-up"},
		{Key: "generate", Icon: "wand-magic-sparkles"},
		{Key: "calibrate", Icon: "sliders"},
		{Key: "initiate", Icon: "play"},
		{Key: "trigger", Icon: "bolt"},

		{Key: "getall", Icon: "list-check"},
		{Key: "get", Icon: "eye"},
		{Key: "findall", Icon: "list-check"},
		{Key: "find", Icon: "magnifying-glass"},
		{Key: "search", Icon: "magnifying-glass"},
		{Key: "list", Icon: "list"},

		{Key: "update", Icon: "pen-to-square"},
		{Key: "edit", Icon: "pen"},
		{Key: "modify", Icon: "pen"},
		{Key: "assign", Icon: "arrow-right-arrow-left"},
		{Key: "remove", Icon: "user-minus"},
		{Key: "revoke", Icon: "ban"},
		{Key: "suspend", Icon: "pause"},
		{Key: "unsuspend", Icon: "play"},

		{Key: "delete", Icon: "trash-can"},
		{Key: "erase", Icon: "eraser"},

		{Key: "unlock", Icon: "lock-open"},
		{Key: "lock", Icon: "lock"},
		{Key: "revert", Icon: "arrow-rotate-left"},
	}
}

// DefaultCategoryIcons maps category directory names to icons, matched by
// substring.
func DefaultCategoryIcons() []IconRule {
	return []IconRule{
		{Key: "access-control", Icon: "key"},
		{Key: "camera", Icon: "video"},
		{Key: "door", Icon: "door-open"},
		{Key: "user", Icon: "user"},
		{Key: "event", Icon: "calendar"},
		{Key: "alert", Icon: "bell"},
		{Key: "sensor", Icon: "sensor"},
		{Key: "webhook", Icon: "webhook"},
		{Key: "location", Icon: "map-pin"},
		{Key: "org", Icon: "building"},
		{Key: "oauth", Icon: "shield-halved"},
		{Key: "face-recognition", Icon: "face-smile"},
		{Key: "badge-reader", Icon: "id-card"},
		{Key: "doorbell", Icon: "bell"},
		{Key: "climate", Icon: "temperature-half"},
		{Key: "export", Icon: "file-export"},
		{Key: "report", Icon: "chart-line"},
		{Key: "developer", Icon: "code"},
		{Key: "integration", Icon: "plug"},
		{Key: "keypad", Icon: "keyboard"},
		{Key: "button", Icon: "circle-dot"},
		{Key: "device", Icon: "microchip"},
		{Key: "component", Icon: "puzzle-piece"},
	}
}

// DefaultPageIcons maps category file stems to the icon stamped on newly
// generated pages, matched exactly.
func DefaultPageIcons() map[string]string {
	return map[string]string{
		"camera":         "camera",
		"access-control": "lock",
		"user":           "user",
		"event":          "calendar",
		"location":       "map-pin",
		"door":           "door-open",
		"sensor":         "sensor",
		"video":          "video",
		"alert":          "bell",
		"org":            "building",
		"webhook":        "webhook",
		"oauth":          "key",
		"report":         "chart-bar",
	}
}
