package repository

import (
	"context"
	"errors"
	"testing"

	"contact-map-service/internal/domain"

	"github.com/google/go-cmp/cmp"
)

// memStore is an in-memory ContactStore for repository tests.
// saveErr, when set, simulates an unavailable backing store.
type memStore struct {
	contacts []domain.Contact
	saved    int
	saveErr  error
}

func (s *memStore) Load(ctx context.Context) ([]domain.Contact, error) {
	out := make([]domain.Contact, len(s.contacts))
	copy(out, s.contacts)
	return out, nil
}

func (s *memStore) Save(ctx context.Context, contacts []domain.Contact) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.contacts = make([]domain.Contact, len(contacts))
	copy(s.contacts, contacts)
	s.saved++
	return nil
}

func newTestRepo(t *testing.T, seed []domain.Contact) (*ContactRepository, *memStore) {
	t.Helper()

	store := &memStore{contacts: seed}
	repo, err := NewContactRepository(context.Background(), store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return repo, store
}

func fields(name, surname, gsm, address string) domain.ContactFields {
	return domain.ContactFields{Name: name, Surname: surname, GSM: gsm, Address: address}
}

func TestAddAppendsWithFreshID(t *testing.T) {
	repo, store := newTestRepo(t, []domain.Contact{
		{ID: "1", Name: "Ahmet", Surname: "Yilmaz", GSM: "05555555555", Address: "Pilkington Avenue"},
	})

	added, err := repo.Add(context.Background(), fields("Mehmet", "Demir", "05443332211", "Kingston Road"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list := repo.List(context.Background())
	if len(list) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(list))
	}
	if added.ID == "" || added.ID == "1" {
		t.Fatalf("expected a fresh unique id, got %q", added.ID)
	}
	if list[1].ID != added.ID {
		t.Errorf("new contact not appended last: got %q", list[1].ID)
	}
	if added.Lat != nil || added.Lon != nil {
		t.Errorf("new contact must start without coordinates")
	}
	if store.saved != 1 {
		t.Errorf("expected 1 store write, got %d", store.saved)
	}
}

func TestAddRejectsEmptyFields(t *testing.T) {
	cases := []struct {
		name   string
		fields domain.ContactFields
	}{
		{"empty name", fields("", "Demir", "05443332211", "Kingston Road")},
		{"empty surname", fields("Mehmet", "", "05443332211", "Kingston Road")},
		{"empty gsm", fields("Mehmet", "Demir", "", "Kingston Road")},
		{"empty address", fields("Mehmet", "Demir", "05443332211", "")},
		{"whitespace only", fields("Mehmet", "Demir", "05443332211", "   ")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo, store := newTestRepo(t, nil)

			_, err := repo.Add(context.Background(), tc.fields)

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(repo.List(context.Background())) != 0 {
				t.Errorf("list must be unchanged after rejected add")
			}
			if store.saved != 0 {
				t.Errorf("rejected add must not persist")
			}
		})
	}
}

func TestUpdateTouchesOnlyTextualFields(t *testing.T) {
	lat, lon := 52.5096, -1.8164
	repo, _ := newTestRepo(t, []domain.Contact{
		{ID: "1", Name: "Ahmet", Surname: "Yilmaz", GSM: "05555555555", Address: "Pilkington Avenue", Lat: &lat, Lon: &lon},
	})

	updated, err := repo.Update(context.Background(), "1", fields("Ahmet", "Yilmaz", "05550000000", "Baker Street"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Address != "Baker Street" || updated.GSM != "05550000000" {
		t.Errorf("textual fields not updated: %+v", updated)
	}
	if updated.Lat == nil || *updated.Lat != lat {
		t.Errorf("update must not touch coordinates, lat = %v", updated.Lat)
	}
	if len(repo.List(context.Background())) != 1 {
		t.Errorf("update must not change list length")
	}
}

func TestUpdateUnknownID(t *testing.T) {
	repo, store := newTestRepo(t, []domain.Contact{
		{ID: "1", Name: "Ahmet", Surname: "Yilmaz", GSM: "05555555555", Address: "Pilkington Avenue"},
	})

	_, err := repo.Update(context.Background(), "nope", fields("A", "B", "C", "D"))
	if !errors.Is(err, domain.ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
	if store.saved != 0 {
		t.Errorf("failed update must not persist")
	}
}

func TestRemove(t *testing.T) {
	repo, _ := newTestRepo(t, []domain.Contact{
		{ID: "1", Name: "Ahmet", Surname: "Yilmaz", GSM: "05555555555", Address: "Pilkington Avenue"},
		{ID: "2", Name: "Mehmet", Surname: "Demir", GSM: "05443332211", Address: "Kingston Road"},
	})

	// Unknown identifier is a no-op.
	if err := repo.Remove(context.Background(), "nope"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.List(context.Background())) != 2 {
		t.Fatalf("no-op remove must not change the list")
	}

	if err := repo.Remove(context.Background(), "1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list := repo.List(context.Background())
	if len(list) != 1 {
		t.Fatalf("expected 1 contact after remove, got %d", len(list))
	}
	if list[0].ID != "2" {
		t.Errorf("wrong contact removed, remaining id = %q", list[0].ID)
	}
}

func TestMergeCoordinates(t *testing.T) {
	repo, _ := newTestRepo(t, []domain.Contact{
		{ID: "1", Name: "Ahmet", Surname: "Yilmaz", GSM: "05555555555", Address: "Pilkington Avenue"},
	})

	merged, err := repo.MergeCoordinates(context.Background(), "1", domain.Coordinates{Lat: 52.5096, Lon: -1.8164})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !merged {
		t.Fatalf("expected merge to apply")
	}

	c, ok := repo.Get(context.Background(), "1")
	if !ok {
		t.Fatalf("contact missing after merge")
	}
	if !c.Coordinated() {
		t.Fatalf("contact must carry both coordinates after merge")
	}
	if *c.Lat != 52.5096 || *c.Lon != -1.8164 {
		t.Errorf("coordinates = (%v, %v), want (52.5096, -1.8164)", *c.Lat, *c.Lon)
	}

	merged, err = repo.MergeCoordinates(context.Background(), "gone", domain.Coordinates{Lat: 1, Lon: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if merged {
		t.Errorf("merge for an absent id must be discarded")
	}
}

func TestMutationsSurviveStoreFailure(t *testing.T) {
	repo, store := newTestRepo(t, nil)
	store.saveErr = errors.New("store unavailable")

	added, err := repo.Add(context.Background(), fields("Ayse", "Kara", "05321234567", "Baker Street"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Best-effort persistence: the in-memory mutation stands.
	got, ok := repo.Get(context.Background(), added.ID)
	if !ok {
		t.Fatalf("contact lost after store failure")
	}
	if diff := cmp.Diff(added, got); diff != "" {
		t.Errorf("contact mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshotsDetachCoordinatePointers(t *testing.T) {
	lat, lon := 52.5096, -1.8164
	repo, _ := newTestRepo(t, []domain.Contact{
		{ID: "1", Name: "Ahmet", Surname: "Yilmaz", GSM: "05555555555", Address: "Pilkington Avenue", Lat: &lat, Lon: &lon},
	})

	got, ok := repo.Get(context.Background(), "1")
	if !ok {
		t.Fatalf("contact missing")
	}

	// Writing through a returned record must not reach repository state.
	*got.Lat = 0
	*got.Lon = 0

	fresh, _ := repo.Get(context.Background(), "1")
	if *fresh.Lat != 52.5096 || *fresh.Lon != -1.8164 {
		t.Errorf("repository coordinates mutated through a snapshot: (%v, %v)", *fresh.Lat, *fresh.Lon)
	}

	list := repo.List(context.Background())
	*list[0].Lat = 99

	fresh, _ = repo.Get(context.Background(), "1")
	if *fresh.Lat != 52.5096 {
		t.Errorf("repository coordinates mutated through a list snapshot: %v", *fresh.Lat)
	}
}

func TestListReturnsSnapshot(t *testing.T) {
	repo, _ := newTestRepo(t, []domain.Contact{
		{ID: "1", Name: "Ahmet", Surname: "Yilmaz", GSM: "05555555555", Address: "Pilkington Avenue"},
	})

	list := repo.List(context.Background())
	list[0].Name = "mutated"

	fresh := repo.List(context.Background())
	if fresh[0].Name != "Ahmet" {
		t.Errorf("List must return a copy, repository was mutated")
	}
}
