package domain

import "testing"

func TestClassifyNiche(t *testing.T) {
	tests := []struct {
		name        string
		title, desc string
		want        string
	}{
		{"gym only", "Morning Gym Sessions", "", "Fitness"},
		{"no keyword", "Hello", "just vibes", GeneralNiche},
		{"empty", "", "", GeneralNiche},
		{"description match", "Jane", "I share my favourite RECIPE every day", "Food"},
		{"table order breaks ties", "gaming and tech reviews", "", "Tech"},
		{"substring match", "Gamers unite", "", "Gaming"},
		{"education", "", "a course on statistics", "Education"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyNiche(tt.title, tt.desc); got != tt.want {
				t.Fatalf("ClassifyNiche(%q, %q) = %q, want %q", tt.title, tt.desc, got, tt.want)
			}
		})
	}
}
