package catalog

import (
	"errors"
	"fmt"
	"testing"

	bookingRepo "flawless/database/repository/booking"
	"flawless/models"
)

type fakeServiceRepo struct {
	services []models.Service
}

func (r *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	for i := range r.services {
		if r.services[i].ID == id {
			s := r.services[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (r *fakeServiceRepo) GetAll() ([]models.Service, error) {
	return append([]models.Service(nil), r.services...), nil
}

func (r *fakeServiceRepo) GetActive() ([]models.Service, error) {
	var out []models.Service
	for _, s := range r.services {
		if s.Active {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeServiceRepo) Create(s *models.Service) error {
	r.services = append(r.services, *s)
	return nil
}

func (r *fakeServiceRepo) Update(s *models.Service) error {
	for i := range r.services {
		if r.services[i].ID == s.ID {
			r.services[i] = *s
			return nil
		}
	}
	return fmt.Errorf("service %s not found", s.ID)
}

func (r *fakeServiceRepo) Delete(id string) error {
	for i := range r.services {
		if r.services[i].ID == id {
			r.services = append(r.services[:i], r.services[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("service %s not found", id)
}

type fakeGalleryRepo struct {
	items []models.GalleryItem
}

func (r *fakeGalleryRepo) GetActive() ([]models.GalleryItem, error) {
	return append([]models.GalleryItem(nil), r.items...), nil
}

func (r *fakeGalleryRepo) Create(item *models.GalleryItem) error {
	r.items = append(r.items, *item)
	return nil
}

func (r *fakeGalleryRepo) Delete(id string) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("gallery item %s not found", id)
}

// fakeBookings implements only what the catalog exercises; the embedded nil
// interface panics loudly if anything else gets called.
type fakeBookings struct {
	bookingRepo.BookingRepository
	deletedFor []string
}

func (f *fakeBookings) DeleteByService(serviceID string) error {
	f.deletedFor = append(f.deletedFor, serviceID)
	return nil
}

func newTestCatalog() (*DefaultCatalogService, *fakeServiceRepo, *fakeBookings) {
	services := &fakeServiceRepo{}
	bookings := &fakeBookings{}
	return &DefaultCatalogService{
		Services: services,
		Gallery:  &fakeGalleryRepo{},
		Bookings: bookings,
	}, services, bookings
}

func TestCreateService_Validation(t *testing.T) {
	svc, _, _ := newTestCatalog()

	var ve *ValidationError
	if _, err := svc.CreateService(models.ServiceInput{Duration: 30, Price: 40}); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for missing name, got %v", err)
	}
	if _, err := svc.CreateService(models.ServiceInput{Name: "Haircut", Duration: 0, Price: 40}); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for zero duration, got %v", err)
	}
	if _, err := svc.CreateService(models.ServiceInput{Name: "Haircut", Duration: 30, Price: -1}); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for negative price, got %v", err)
	}
}

func TestCreateService_StartsActive(t *testing.T) {
	svc, _, _ := newTestCatalog()

	created, err := svc.CreateService(models.ServiceInput{Name: "  Haircut ", Duration: 30, Price: 40})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Name != "Haircut" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
	if !created.Active {
		t.Fatal("new services must start active")
	}
	if created.ID == "" {
		t.Fatal("expected a generated ID")
	}
}

func TestSetServiceActive_HidesFromMenu(t *testing.T) {
	svc, _, _ := newTestCatalog()

	created, err := svc.CreateService(models.ServiceInput{Name: "Facial", Duration: 60, Price: 80})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.SetServiceActive(created.ID, false); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}

	active, err := svc.ListActiveServices()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("deactivated service still on the menu: %+v", active)
	}

	all, err := svc.ListAllServices()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("deactivated service must stay in the catalog, got %d", len(all))
	}
}

func TestDeleteService_CascadesBookings(t *testing.T) {
	svc, services, bookings := newTestCatalog()

	created, err := svc.CreateService(models.ServiceInput{Name: "Manicure", Duration: 45, Price: 25})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.DeleteService(created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(services.services) != 0 {
		t.Fatal("service record not removed")
	}
	if len(bookings.deletedFor) != 1 || bookings.deletedFor[0] != created.ID {
		t.Fatalf("expected bookings cascade for %s, got %v", created.ID, bookings.deletedFor)
	}

	var ne *NotFoundError
	if err := svc.DeleteService("missing"); !errors.As(err, &ne) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestAddGalleryItem_Defaults(t *testing.T) {
	svc, _, _ := newTestCatalog()

	var ve *ValidationError
	if _, err := svc.AddGalleryItem(models.GalleryItemInput{}); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for missing URL, got %v", err)
	}
	if _, err := svc.AddGalleryItem(models.GalleryItemInput{ImageURL: "https://cdn/x.jpg", Type: "gif"}); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for bad type, got %v", err)
	}

	item, err := svc.AddGalleryItem(models.GalleryItemInput{ImageURL: "https://cdn/x.jpg"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Type != "image" || item.Category != "general" {
		t.Fatalf("expected defaults, got %+v", item)
	}
	if !item.Active {
		t.Fatal("new gallery items must start active")
	}
}
