package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"ad-exchange/internal/core/domain"
)

// seedNamespace keeps demo ids stable so seeding twice is a no-op.
var seedNamespace = uuid.MustParse("6f1c1c0e-8a47-4d0b-9a43-5d7f1b2e9c11")

type seedStore struct {
	id, name, category string
	baseTraffic        int64
}

var seedStores = []seedStore{
	{id: "store-berlin-mitte", name: "Berlin Mitte Flagship", category: "fashion", baseTraffic: 1400},
	{id: "store-hamburg-hbf", name: "Hamburg Central Station", category: "electronics", baseTraffic: 1800},
	{id: "store-munich-west", name: "Munich West Mall", category: "groceries", baseTraffic: 700},
	{id: "store-cologne-old", name: "Cologne Old Town", category: "fashion", baseTraffic: 450},
	{id: "store-leipzig-ost", name: "Leipzig Ost", category: "home", baseTraffic: 120},
}

var seedWindows = []struct {
	start, end string
	hours      int
	prime      bool
	traffic    float64
}{
	{start: "09:00", end: "12:00", hours: 3, traffic: 0.7},
	{start: "12:00", end: "15:00", hours: 3, prime: true, traffic: 1.3},
	{start: "17:00", end: "20:00", hours: 3, prime: true, traffic: 1.5},
}

// Seed inserts demo stores, a week of slots per store and three campaigns
// with different strategies. Existing rows are left untouched.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(42))

	for _, st := range seedStores {
		_, err := db.Exec(ctx, `INSERT INTO stores (id, name, category) VALUES ($1,$2,$3) ON CONFLICT DO NOTHING`,
			st.id, st.name, st.category)
		if err != nil {
			return err
		}
		for day := range 7 {
			weekend := day == 0 || day == 6
			for _, w := range seedWindows {
				traffic := int64(float64(st.baseTraffic)*w.traffic) + r.Int63n(100)
				if weekend {
					traffic = traffic * 5 / 4
				}
				price := 20 + traffic/20
				if w.prime {
					price = price * 3 / 2
				}
				id := uuid.NewSHA1(seedNamespace, fmt.Appendf(nil, "slot:%s:%d:%s", st.id, day, w.start))
				_, err = db.Exec(ctx, `INSERT INTO slots
(id, store_id, day_of_week, start_time, end_time, duration_hours, credits_per_hour, average_traffic, is_prime_time, is_active)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,true) ON CONFLICT DO NOTHING`,
					id, st.id, day, w.start, w.end, w.hours, price, traffic, w.prime)
				if err != nil {
					return err
				}
			}
		}
	}

	campaigns := []struct {
		name, strategy, goal string
		credits              int64
		daily                *int64
		targeting            domain.Targeting
	}{
		{
			name: "Spring Collection Launch", strategy: "smart", goal: "conversions", credits: 50000,
			targeting: domain.Targeting{TargetCategories: []string{"fashion"}, PreferredDays: []int{5, 6}},
		},
		{
			name: "Gadget Week", strategy: "aggressive", goal: "traffic", credits: 120000,
			daily:     ptr(int64(8000)),
			targeting: domain.Targeting{MinTraffic: ptr(int64(800))},
		},
		{
			name: "Neighbourhood Awareness", strategy: "conservative", goal: "awareness", credits: 15000,
			targeting: domain.Targeting{ExcludeStores: []string{"store-hamburg-hbf"}, AvoidPrimeTime: true},
		},
	}
	for _, c := range campaigns {
		targeting, err := json.Marshal(c.targeting)
		if err != nil {
			return err
		}
		id := uuid.NewSHA1(seedNamespace, []byte("campaign:"+c.name))
		_, err = db.Exec(ctx, `INSERT INTO campaigns
(id, name, targeting, bidding_strategy, optimization_goal, total_credits, credits_remaining, daily_budget, status)
VALUES ($1,$2,$3,$4,$5,$6,$6,$7,'active') ON CONFLICT DO NOTHING`,
			id, c.name, targeting, c.strategy, c.goal, c.credits, c.daily)
		if err != nil {
			return err
		}
	}
	return nil
}

func ptr[T any](v T) *T {
	return &v
}
