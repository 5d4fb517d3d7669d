// Package seed fabricates demo dog listings for development databases.
package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/streetdogs/backend/internal/model"
	"github.com/streetdogs/backend/internal/repository"
)

// DefaultCount is how many dogs a seed run inserts unless told otherwise.
const DefaultCount = 100

// placeholderImages are stable dog photos so seeded cards render without uploads.
var placeholderImages = func() []string {
	urls := make([]string, 10)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://placedog.net/640/480?id=%d", i+1)
	}
	return urls
}()

var statuses = []string{
	string(model.StatusAvailable),
	string(model.StatusAdopted),
	string(model.StatusFostered),
}

// Dogs returns n fake dogs (none when n <= 0). Size follows the same age rule as uploads.
func Dogs(f *gofakeit.Faker, n int, now time.Time) []*model.Dog {
	if n < 0 {
		n = 0
	}
	dogs := make([]*model.Dog, 0, n)
	for i := 0; i < n; i++ {
		age := float64(f.Number(1, 15))
		dogs = append(dogs, &model.Dog{
			Name:           f.FirstName(),
			Breed:          f.Dog(),
			Age:            age,
			Gender:         titleCase(f.Gender()),
			Size:           model.SizeForAge(age),
			Color:          f.Color(),
			Vaccinated:     f.Bool(),
			AdoptionStatus: model.AdoptionStatus(f.RandomString(statuses)),
			Location:       f.City(),
			ImageURL:       f.RandomString(placeholderImages),
			Description:    f.Sentence(10),
			// 一覧の順序が挿入順になるよう 1ms ずつずらす
			CreatedAt: now.Add(time.Duration(i) * time.Millisecond),
		})
	}
	return dogs
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Mode selects whether existing dogs are removed before inserting.
type Mode string

const (
	ModeReset  Mode = "reset"
	ModeAppend Mode = "append"
)

// ParseMode accepts "reset" or "append"; empty means reset.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeReset:
		return ModeReset, nil
	case ModeAppend:
		return ModeAppend, nil
	}
	return "", fmt.Errorf("seed: unknown mode %q (want reset or append)", s)
}

// Run writes dogs to repo, clearing the collection first in reset mode.
func Run(ctx context.Context, repo repository.DogRepository, mode Mode, dogs []*model.Dog) error {
	if mode == ModeReset {
		if err := repo.DeleteAll(ctx); err != nil {
			return fmt.Errorf("seed: delete dogs: %w", err)
		}
	}
	if err := repo.InsertMany(ctx, dogs); err != nil {
		return fmt.Errorf("seed: insert dogs: %w", err)
	}
	return nil
}
