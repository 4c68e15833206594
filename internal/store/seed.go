// ABOUTME: Default portfolio content for first-run databases
// ABOUTME: Seed populates an empty store so the site is never blank offline

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultProfile returns the built-in owner profile, used both as seed
// content and as the fallback when no profile has been saved.
func DefaultProfile() Profile {
	return Profile{
		Name:       "Vacaru Andrei Laurentiu",
		ShortName:  "Lawrin",
		Title:      "Electronics Student & Developer",
		Age:        21,
		University: "Universitatea Politehnica București",
		Faculty:    "Facultatea de Transporturi - Electronică",
		Bio:        "Pasionat de electronică, programare și proiecte creative.",
		Email:      "contact@lwr.ro",
		Instagram:  "#",
		LinkedIn:   "#",
		GitHub:     "#",
	}
}

// Seed populates an empty store with default content so a fresh deployment
// renders a complete site before the owner has created anything. Stores that
// already hold projects are left untouched.
func Seed(ctx context.Context, s Store) error {
	existing, err := s.ListProjects(ctx)
	if err != nil {
		return fmt.Errorf("checking existing content: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, p := range defaultProjects() {
		if err := s.CreateProject(ctx, p); err != nil {
			return fmt.Errorf("seeding project %q: %w", p.Title, err)
		}
	}

	album := &Album{
		ID:          uuid.NewString(),
		Name:        "Workshop",
		Description: "Proiecte și echipamente din atelier.",
		Cover:       "https://images.unsplash.com/photo-1581091226825-a6a2a5aee158?w=800&h=600&fit=crop",
		CreatedAt:   seedTime("2024-09-01"),
	}
	if err := s.CreateAlbum(ctx, album); err != nil {
		return fmt.Errorf("seeding album: %w", err)
	}

	for _, m := range defaultMedia(album.ID) {
		if err := s.CreateMedia(ctx, m); err != nil {
			return fmt.Errorf("seeding media %q: %w", m.Title, err)
		}
	}

	for _, r := range defaultReviews() {
		if err := s.CreateReview(ctx, r); err != nil {
			return fmt.Errorf("seeding review from %q: %w", r.Name, err)
		}
	}

	profile := DefaultProfile()
	if err := s.SetProfile(ctx, &profile); err != nil {
		return fmt.Errorf("seeding profile: %w", err)
	}

	return nil
}

func defaultProjects() []*Project {
	return []*Project{
		{
			ID:           uuid.NewString(),
			Title:        "Smart Home Controller",
			Description:  "Sistem de automatizare pentru casă bazat pe ESP32 cu interfață web și control prin aplicație mobilă.",
			Category:     "Electronics",
			Image:        "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=600&h=400&fit=crop",
			Gallery:      []string{},
			Technologies: []string{"ESP32", "C++", "React", "MQTT"},
			Featured:     true,
			Date:         "2024-12-15",
			CreatedAt:    seedTime("2024-12-15"),
		},
		{
			ID:           uuid.NewString(),
			Title:        "LED Matrix Display",
			Description:  "Matrice LED 32x16 controlată prin Arduino cu animații personalizate și sincronizare audio.",
			Category:     "Electronics",
			Image:        "https://images.unsplash.com/photo-1518770660439-4636190af475?w=600&h=400&fit=crop",
			Gallery:      []string{},
			Technologies: []string{"Arduino", "WS2812B", "Python"},
			Featured:     true,
			Date:         "2024-10-20",
			CreatedAt:    seedTime("2024-10-20"),
		},
		{
			ID:           uuid.NewString(),
			Title:        "Portfolio Website",
			Description:  "Site personal de portofoliu cu design modern și funcționalități de administrare.",
			Category:     "Web Development",
			Image:        "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=600&h=400&fit=crop",
			Gallery:      []string{},
			Technologies: []string{"React", "Go", "SQLite"},
			Featured:     false,
			Date:         "2025-01-10",
			CreatedAt:    seedTime("2025-01-10"),
		},
		{
			ID:           uuid.NewString(),
			Title:        "Weather Station",
			Description:  "Stație meteo DIY cu senzori de temperatură, umiditate și presiune atmosferică.",
			Category:     "Electronics",
			Image:        "https://images.unsplash.com/photo-1504608524841-42fe6f032b4b?w=600&h=400&fit=crop",
			Gallery:      []string{},
			Technologies: []string{"Raspberry Pi", "Python", "InfluxDB"},
			Featured:     false,
			Date:         "2024-08-05",
			CreatedAt:    seedTime("2024-08-05"),
		},
	}
}

func defaultMedia(albumID string) []*MediaImage {
	return []*MediaImage{
		{
			ID:        uuid.NewString(),
			Title:     "Circuit Board Design",
			URL:       "https://images.unsplash.com/photo-1518770660439-4636190af475?w=800&h=600&fit=crop",
			AlbumID:   albumID,
			Category:  "Electronics",
			CreatedAt: seedTime("2024-12-10"),
		},
		{
			ID:        uuid.NewString(),
			Title:     "Workshop Setup",
			URL:       "https://images.unsplash.com/photo-1581091226825-a6a2a5aee158?w=800&h=600&fit=crop",
			AlbumID:   albumID,
			Category:  "Workspace",
			CreatedAt: seedTime("2024-11-15"),
		},
		{
			ID:        uuid.NewString(),
			Title:     "LED Project",
			URL:       "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=800&h=600&fit=crop",
			AlbumID:   albumID,
			Category:  "Projects",
			CreatedAt: seedTime("2024-10-20"),
		},
		{
			ID:        uuid.NewString(),
			Title:     "Soldering Station",
			URL:       "https://images.unsplash.com/photo-1517077304055-6e89abbf09b0?w=800&h=600&fit=crop",
			AlbumID:   albumID,
			Category:  "Workspace",
			CreatedAt: seedTime("2024-09-05"),
		},
	}
}

func defaultReviews() []*Review {
	return []*Review{
		{
			ID:        uuid.NewString(),
			Name:      "Alexandru Pop",
			Role:      "Coleg de facultate",
			Content:   "Andrei este un coleg de nădejde, mereu dispus să ajute și să explice concepte complexe de electronică.",
			Rating:    5,
			CreatedAt: seedTime("2024-11-20"),
		},
		{
			ID:        uuid.NewString(),
			Name:      "Maria Ionescu",
			Role:      "Client",
			Content:   "Am colaborat pentru un proiect de automatizare. Profesionist, punctual și foarte creativ în soluții.",
			Rating:    5,
			CreatedAt: seedTime("2024-12-01"),
		},
		{
			ID:        uuid.NewString(),
			Name:      "Cristian Dumitrescu",
			Role:      "Prieten",
			Content:   "Îl cunosc pe Andrei de ani de zile. Dedicat, pasionat și mereu în căutarea de noi provocări tehnice.",
			Rating:    5,
			CreatedAt: seedTime("2025-01-05"),
		},
	}
}

func seedTime(day string) time.Time {
	t, _ := time.Parse("2006-01-02", day)
	return t
}
