package domain

// ZenbookDuo returns the registry entry for the ASUS Zenbook Duo (2024)
// UX8406 family, the only model currently served.
func ZenbookDuo() *Model {
	return &Model{
		Prefix:           "UX8406",
		Name:             "ASUS Zenbook Duo (2024) UX8406",
		ProductPageURL:   "https://www.asus.com/laptops/for-home/zenbook/asus-zenbook-duo-2024-ux8406/",
		TechSpecPageURL:  "https://www.asus.com/laptops/for-home/zenbook/asus-zenbook-duo-2024-ux8406/techspec/",
		ImageHostPattern: "asus.com",
		Fallback: SpecData{
			Display:          "Dual 14.0\" 3K (2880 x 1800) OLED 120Hz touchscreens, 100% DCI-P3, 500 nits HDR peak",
			CPU:              "Intel Core Ultra 7 155H / Intel Core Ultra 9 185H",
			GPU:              "Intel Arc Graphics (integrated)",
			Memory:           "16GB / 32GB LPDDR5X onboard",
			Storage:          "1TB M.2 NVMe PCIe 4.0 SSD",
			Ports:            "2x Thunderbolt 4 (USB-C), 1x USB 3.2 Gen 1 Type-A, 1x HDMI 2.1 (TMDS), 1x 3.5mm combo audio jack",
			Camera:           "FHD IR camera with Windows Hello support",
			Wireless:         "Wi-Fi 6E (802.11ax) + Bluetooth 5.3",
			Battery:          "75WHrs, 4S1P, 4-cell Li-ion",
			DimensionsWeight: "31.35 x 21.79 x 1.46~1.99 cm, 1.35 kg (tablet) / 1.65 kg with keyboard",
		},
		Rules: ExtractionRules{
			// All three anchor signals must hold before any live field is
			// trusted; a partial match means the page layout has drifted.
			RequiredSignals: []SignalGroup{
				{"oled"},
				{"thunderbolt", "hdmi"},
				{"core ultra"},
			},
			FieldTriggers: []FieldTrigger{
				{Keyword: "2880 x 1800", Field: FieldDisplay, Value: "Dual 14.0\" 3K (2880 x 1800) OLED 120Hz touchscreens, 100% DCI-P3, 500 nits HDR peak"},
				{Keyword: "core ultra 9", Field: FieldCPU, Value: "Intel Core Ultra 7 155H / Intel Core Ultra 9 185H"},
				{Keyword: "intel arc", Field: FieldGPU, Value: "Intel Arc Graphics (integrated)"},
				{Keyword: "lpddr5x", Field: FieldMemory, Value: "16GB / 32GB LPDDR5X onboard"},
				{Keyword: "pcie 4.0", Field: FieldStorage, Value: "1TB M.2 NVMe PCIe 4.0 SSD"},
				{Keyword: "thunderbolt", Field: FieldPorts, Value: "2x Thunderbolt 4 (USB-C), 1x USB 3.2 Gen 1 Type-A, 1x HDMI 2.1 (TMDS), 1x 3.5mm combo audio jack"},
				{Keyword: "ir camera", Field: FieldCamera, Value: "FHD IR camera with Windows Hello support"},
				{Keyword: "wi-fi 6e", Field: FieldWireless, Value: "Wi-Fi 6E (802.11ax) + Bluetooth 5.3"},
				{Keyword: "75wh", Field: FieldBattery, Value: "75WHrs, 4S1P, 4-cell Li-ion"},
			},
		},
		Marketing: map[Language]MarketingCopy{
			LangHebrew: {
				Headline:    "ASUS Zenbook Duo — שני מסכים. מחשב נייד אחד.",
				Subheadline: "מחשב ה-OLED הנייד הראשון בעולם עם שני מסכי 14 אינץ'",
				Benefits: []string{
					"שני מסכי מגע 3K OLED בגודל 14 אינץ' עם קצב רענון 120Hz",
					"מעבדי Intel Core Ultra עם האצת AI מובנית",
					"מקלדת Bluetooth נשלפת ומעמד מובנה לעבודה בכל מצב",
					"סוללת 75Wh ליום עבודה מלא",
				},
				SourcesLine: "המפרט מבוסס על: %s",
				CTA:         "לפרטים נוספים ולרכישה",
			},
			LangEnglish: {
				Headline:    "ASUS Zenbook Duo — Two Screens. One Laptop.",
				Subheadline: "The world's first 14-inch dual-screen OLED laptop",
				Benefits: []string{
					"Dual 14-inch 3K OLED touchscreens at 120Hz",
					"Intel Core Ultra processors with built-in AI acceleration",
					"Detachable Bluetooth keyboard and integrated kickstand for any working mode",
					"75Wh battery for a full workday",
				},
				SourcesLine: "Specifications sourced from: %s",
				CTA:         "Learn more",
			},
		},
	}
}

// DefaultRegistry returns the registry of all served models.
func DefaultRegistry() *Registry {
	return NewRegistry(ZenbookDuo())
}
