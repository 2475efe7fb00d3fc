package services

import (
	"errors"
	"testing"

	"github.com/terraincognita07/moveday/internal/models"
)

type fakeChecklistRepository struct {
	store      map[uint][]models.ChecklistItem
	nextID     uint
	listErr    error
	createErr  error
	updateErr  error
	listCalls  int
	createCall int
}

func newFakeChecklistRepository() *fakeChecklistRepository {
	return &fakeChecklistRepository{store: map[uint][]models.ChecklistItem{}}
}

func (repo *fakeChecklistRepository) ListByUser(userID uint) ([]models.ChecklistItem, error) {
	repo.listCalls++
	if repo.listErr != nil {
		return nil, repo.listErr
	}
	items := make([]models.ChecklistItem, len(repo.store[userID]))
	copy(items, repo.store[userID])
	for index := range items {
		items[index].Persisted = true
	}
	return items, nil
}

func (repo *fakeChecklistRepository) CreateBatch(items []models.ChecklistItem) error {
	repo.createCall++
	if repo.createErr != nil {
		return repo.createErr
	}
	for _, item := range items {
		repo.nextID++
		item.ID = repo.nextID
		repo.store[item.UserID] = append(repo.store[item.UserID], item)
	}
	return nil
}

func (repo *fakeChecklistRepository) UpdateCompleted(itemID uint, userID uint, completed bool) error {
	if repo.updateErr != nil {
		return repo.updateErr
	}
	for index := range repo.store[userID] {
		if repo.store[userID][index].ID == itemID {
			repo.store[userID][index].Completed = completed
			return nil
		}
	}
	return errors.New("item not found")
}

type recordingToggleWriter struct {
	writes []models.ChecklistItem
}

func (writer *recordingToggleWriter) WriteToggle(item models.ChecklistItem) {
	writer.writes = append(writer.writes, item)
}

func TestLoadChecklistAnonymousIsEmpty(t *testing.T) {
	repo := newFakeChecklistRepository()
	service := NewChecklistService(repo)

	items := service.LoadChecklist(0)
	if len(items) != 0 {
		t.Fatalf("LoadChecklist(0) returned %d items, want 0", len(items))
	}
	if repo.listCalls != 0 || repo.createCall != 0 {
		t.Fatal("anonymous load must not touch the store")
	}
}

func TestLoadChecklistFirstVisitCreatesDefaults(t *testing.T) {
	repo := newFakeChecklistRepository()
	service := NewChecklistService(repo)

	items := service.LoadChecklist(7)
	if len(items) != 11 {
		t.Fatalf("first load returned %d items, want 11", len(items))
	}
	for _, item := range items {
		if item.Completed {
			t.Fatalf("item %q created completed", item.ItemKey)
		}
		if !item.Persisted {
			t.Fatalf("item %q not marked persisted after successful insert", item.ItemKey)
		}
		if item.UserID != 7 {
			t.Fatalf("item %q owned by user %d, want 7", item.ItemKey, item.UserID)
		}
	}
}

func TestLoadChecklistReturnsExistingItems(t *testing.T) {
	repo := newFakeChecklistRepository()
	service := NewChecklistService(repo)

	service.LoadChecklist(7)
	createCallsAfterFirst := repo.createCall

	items := service.LoadChecklist(7)
	if len(items) != 11 {
		t.Fatalf("second load returned %d items, want 11", len(items))
	}
	if repo.createCall != createCallsAfterFirst {
		t.Fatal("second load re-created defaults")
	}
}

func TestLoadChecklistReadErrorFallsBackToDefaults(t *testing.T) {
	repo := newFakeChecklistRepository()
	service := NewChecklistService(repo)
	repo.listErr = errors.New("disk on fire")

	items := service.LoadChecklist(7)
	if len(items) != 11 {
		t.Fatalf("load with read error returned %d items, want 11", len(items))
	}
	// Re-list inside CreateDefaultChecklist also fails, so the items must be
	// the locally fabricated ones.
	for index, item := range items {
		if item.Persisted {
			t.Fatalf("item %q marked persisted despite store failure", item.ItemKey)
		}
		if item.ID != uint(index+1) {
			t.Fatalf("fallback item %d has id %d, want %d", index, item.ID, index+1)
		}
	}
}

func TestCreateDefaultChecklistInsertFailureFabricatesItems(t *testing.T) {
	repo := newFakeChecklistRepository()
	service := NewChecklistService(repo)
	repo.createErr = errors.New("constraint violated")

	items := service.CreateDefaultChecklist(7)
	if len(items) != 11 {
		t.Fatalf("fallback returned %d items, want 11", len(items))
	}
	for index, item := range items {
		if item.ID != uint(index+1) {
			t.Fatalf("fallback item %d has id %d, want positional %d", index, item.ID, index+1)
		}
		if item.Persisted {
			t.Fatalf("fallback item %q claims to be persisted", item.ItemKey)
		}
	}
}

func TestCreateDefaultChecklistReturnsStoredRows(t *testing.T) {
	repo := newFakeChecklistRepository()
	service := NewChecklistService(repo)

	items := service.CreateDefaultChecklist(7)
	for _, item := range items {
		if item.ID == 0 {
			t.Fatalf("item %q returned without a store-assigned id", item.ItemKey)
		}
		if !item.Persisted {
			t.Fatalf("item %q not marked persisted", item.ItemKey)
		}
	}
}

func TestCreateDefaultChecklistCopiesTemplateFields(t *testing.T) {
	repo := newFakeChecklistRepository()
	service := NewChecklistService(repo)

	items := service.CreateDefaultChecklist(7)
	byKey := map[string]models.ChecklistItem{}
	for _, item := range items {
		byKey[item.ItemKey] = item
	}

	for _, template := range ChecklistTemplates() {
		item, found := byKey[template.Key]
		if !found {
			t.Fatalf("template %q produced no instance", template.Key)
		}
		if item.Title != template.Title ||
			item.Description != template.Description ||
			item.Category != template.Category ||
			item.DDayRange != template.DDayRange ||
			item.MinOffsetDays != template.MinOffsetDays ||
			item.MaxOffsetDays != template.MaxOffsetDays ||
			item.HasGuide != template.HasGuide ||
			item.HasService != template.HasService {
			t.Fatalf("instance %q does not copy its template verbatim: %+v", template.Key, item)
		}
	}
}

func TestToggleItemFlipsAndRecordsWrite(t *testing.T) {
	repo := newFakeChecklistRepository()
	writer := &recordingToggleWriter{}
	service := NewChecklistServiceWithWriter(repo, writer)

	items := []models.ChecklistItem{
		{ID: 1, UserID: 7, ItemKey: "select-movers"},
		{ID: 2, UserID: 7, ItemKey: "book-cleaning", Completed: true},
	}

	items, found := service.ToggleItem(items, 1)
	if !found {
		t.Fatal("ToggleItem() did not find item 1")
	}
	if !items[0].Completed {
		t.Fatal("item 1 not flipped to completed")
	}
	if len(writer.writes) != 1 || writer.writes[0].ID != 1 || !writer.writes[0].Completed {
		t.Fatalf("writer recorded %+v, want one completed write for item 1", writer.writes)
	}

	items, found = service.ToggleItem(items, 1)
	if !found {
		t.Fatal("second toggle did not find item 1")
	}
	if items[0].Completed {
		t.Fatal("double toggle did not restore the original state")
	}
}

func TestToggleItemUnknownIDLeavesListUntouched(t *testing.T) {
	repo := newFakeChecklistRepository()
	writer := &recordingToggleWriter{}
	service := NewChecklistServiceWithWriter(repo, writer)

	items := []models.ChecklistItem{{ID: 1, UserID: 7}}
	items, found := service.ToggleItem(items, 42)
	if found {
		t.Fatal("ToggleItem() reported a match for an unknown id")
	}
	if items[0].Completed {
		t.Fatal("unmatched toggle mutated the list")
	}
	if len(writer.writes) != 0 {
		t.Fatal("unmatched toggle reached the writer")
	}
}

func TestToggleItemKeepsFlipWhenWriteFails(t *testing.T) {
	repo := newFakeChecklistRepository()
	repo.updateErr = errors.New("write refused")
	writer := &recordingToggleWriter{}
	service := NewChecklistServiceWithWriter(repo, writer)

	items := []models.ChecklistItem{{ID: 1, UserID: 7}}
	items, found := service.ToggleItem(items, 1)
	if !found {
		t.Fatal("ToggleItem() did not find item 1")
	}
	if !items[0].Completed {
		t.Fatal("flip rolled back on write failure")
	}
}
