package domain

type ThemeConfig struct {
	InitialColorMode   string `json:"initialColorMode"`
	UseSystemColorMode bool   `json:"useSystemColorMode"`
}

type BodyStyle struct {
	Bg    string `json:"bg"`
	Color string `json:"color"`
}

type GlobalStyles struct {
	Body BodyStyle `json:"body"`
}

// ComponentStyle holds base styles and default props for one component.
type ComponentStyle struct {
	BaseStyle    map[string]string `json:"baseStyle,omitempty"`
	DefaultProps map[string]string `json:"defaultProps,omitempty"`
}

type Theme struct {
	Config     ThemeConfig               `json:"config"`
	Styles     GlobalStyles              `json:"styles"`
	Colors     map[string]map[int]string `json:"colors"`
	Components map[string]ComponentStyle `json:"components"`
}

func DefaultTheme() Theme {
	return Theme{
		Config: ThemeConfig{
			InitialColorMode:   "light",
			UseSystemColorMode: false,
		},
		Styles: GlobalStyles{
			Body: BodyStyle{Bg: "gray.50", Color: "gray.800"},
		},
		Colors: map[string]map[int]string{
			"brand": {
				50:  "#f5faff",
				100: "#e6f2ff",
				200: "#cce5ff",
				300: "#99ccff",
				400: "#66b3ff",
				500: "#339aff",
				600: "#007fff",
				700: "#0066cc",
				800: "#004c99",
				900: "#003366",
			},
		},
		Components: map[string]ComponentStyle{
			"Button": {
				BaseStyle:    map[string]string{"rounded": "md"},
				DefaultProps: map[string]string{"colorScheme": "blue"},
			},
			"Input": {
				DefaultProps: map[string]string{"focusBorderColor": "blue.400"},
			},
		},
	}
}

// Brand returns a shade of the brand palette, or "" if the shade is undefined.
func (t Theme) Brand(shade int) string {
	return t.Colors["brand"][shade]
}
