package event

import "testing"

func TestIsDatedEventURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://vault.racerxonline.com/2025-05-10/450sx/rice-eccles-stadium", true},
		{"https://vault.racerxonline.com/2025/sx/races", false},
		{"https://vault.racerxonline.com/1974-07-14/250/red-bud", true},
		{"https://vault.racerxonline.com/about", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := IsDatedEventURL(tt.url); got != tt.want {
				t.Errorf("IsDatedEventURL(%q) = %v, expected %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestClassFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://vault.racerxonline.com/2025-05-10/450sx/rice-eccles-stadium", "450sx"},
		{"https://vault.racerxonline.com/2025-08-23/250/budds-creek-motocross-park", "250"},
		{"https://vault.racerxonline.com/2024-09-07/250SMX/zmax-dragway", "250smx"},
		{"https://vault.racerxonline.com/2024-09-07/smx-next/zmax-dragway", "smx-next"},
		{"https://vault.racerxonline.com/2025/sx/races", ""},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := ClassFromURL(tt.url); got != tt.want {
				t.Errorf("ClassFromURL(%q) = %q, expected %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestVenueFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://vault.racerxonline.com/2025-05-10/450sx/rice-eccles-stadium", "Rice Eccles Stadium"},
		{"https://vault.racerxonline.com/2025-08-23/250/budds-creek-motocross-park", "Budds Creek Motocross Park"},
		{"https://vault.racerxonline.com/2025-08-23/250/red-bud/", "Red Bud"},
		{"https://vault.racerxonline.com/2025-08-23/250/RED-BUD", "Red Bud"},
		{"https://vault.racerxonline.com/2025-08-23/250", ""},
		{"https://vault.racerxonline.com/2025/sx/races", ""},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := VenueFromURL(tt.url); got != tt.want {
				t.Errorf("VenueFromURL(%q) = %q, expected %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestSeasonFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want int
	}{
		{"https://vault.racerxonline.com/2025/sx/races", 2025},
		{"https://vault.racerxonline.com/1974/mx/races", 1974},
		// Dated result URLs carry no season segment
		{"https://vault.racerxonline.com/2025-05-10/450sx/rice-eccles-stadium", 0},
		{"not a url", 0},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := SeasonFromURL(tt.url); got != tt.want {
				t.Errorf("SeasonFromURL(%q) = %d, expected %d", tt.url, got, tt.want)
			}
		})
	}
}
