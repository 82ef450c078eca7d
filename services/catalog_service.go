package services

import (
	"context"
	"strings"
	"time"

	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/entity"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/repository"

	"gorm.io/datatypes"
)

// CatalogService manages vendor menu items and daily menus.
type CatalogService struct {
	Repo       *repository.MenuRepository
	VendorRepo *repository.VendorRepository
}

func NewCatalogService(repo *repository.MenuRepository, vendorRepo *repository.VendorRepository) *CatalogService {
	return &CatalogService{Repo: repo, VendorRepo: vendorRepo}
}

type CreateMenuItemInput struct {
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	Price            float64 `json:"price"`
	Description      string  `json:"description"`
	Image            string  `json:"image"`
	IsVegetarian     *bool   `json:"is_vegetarian"`
	IsSpicy          bool    `json:"is_spicy"`
	IsAvailableToday *bool   `json:"is_available_today"`
}

type CreateMenuInput struct {
	Name           string  `json:"name"`
	Date           string  `json:"date"`
	Image          string  `json:"image"`
	MainItems      []uint  `json:"main_items"`
	SideItems      []uint  `json:"side_items"`
	Extras         []uint  `json:"extras"`
	FullDabbaPrice float64 `json:"full_dabba_price"`
	MaxDabbas      int     `json:"max_dabbas"`
	TodaysSpecial  string  `json:"todays_special"`
	CookingStyle   string  `json:"cooking_style"`
}

type DashboardStats struct {
	TotalMenuItems  int64 `json:"total_menu_items"`
	ActiveMenuItems int64 `json:"active_menu_items"`
	TotalMenus      int64 `json:"total_menus"`
	ActiveMenus     int64 `json:"active_menus"`
}

type Dashboard struct {
	VendorInfo  VendorProfile  `json:"vendor_info"`
	Statistics  DashboardStats `json:"statistics"`
	RecentMenus []MenuView     `json:"recent_menus"`
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// ----- Menu items -----

func (s *CatalogService) CreateItem(ctx context.Context, vendorID uint, in CreateMenuItemInput) (*MenuItemView, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" || in.Category == "" || in.Price <= 0 {
		return nil, Validation("Name, category, and price required")
	}
	category := entity.MenuCategory(in.Category)
	if !category.Valid() {
		return nil, Validation("Invalid menu item category")
	}
	exists, err := s.Repo.ItemNameExists(ctx, vendorID, in.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, Duplicate("Menu item with this name already exists")
	}

	item := entity.MenuItem{
		VendorID:         vendorID,
		Name:             in.Name,
		Category:         category,
		Price:            in.Price,
		Description:      strings.TrimSpace(in.Description),
		Image:            in.Image,
		IsVegetarian:     boolOr(in.IsVegetarian, true),
		IsSpicy:          in.IsSpicy,
		IsAvailableToday: boolOr(in.IsAvailableToday, true),
	}
	if err := s.Repo.CreateItem(ctx, &item); err != nil {
		return nil, err
	}
	view := NewMenuItemView(&item)
	return &view, nil
}

func (s *CatalogService) ListItems(ctx context.Context, vendorID uint) ([]MenuItemView, error) {
	items, err := s.Repo.ListItems(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	out := make([]MenuItemView, 0, len(items))
	for i := range items {
		out = append(out, NewMenuItemView(&items[i]))
	}
	return out, nil
}

// ----- Daily menus -----

// CreateMenu publishes a dated menu. The menu is veg-only when every
// referenced item is vegetarian.
func (s *CatalogService) CreateMenu(ctx context.Context, vendorID uint, in CreateMenuInput) (*MenuView, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" || in.Date == "" || in.FullDabbaPrice <= 0 {
		return nil, Validation("Name, date, and price required")
	}
	day, ok := ParseDay(in.Date)
	if !ok {
		return nil, Validation("Invalid menu date")
	}
	if in.MaxDabbas < 0 {
		return nil, Validation("Max dabbas cannot be negative")
	}
	if in.MaxDabbas == 0 {
		in.MaxDabbas = entity.DefaultMaxDabbas
	}

	exists, err := s.Repo.NameDateExists(ctx, vendorID, in.Name, day)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, Duplicate("Menu with this name and date already exists")
	}

	menu := entity.Menu{
		VendorID:       vendorID,
		Name:           in.Name,
		Date:           day,
		Image:          in.Image,
		MainItems:      datatypes.NewJSONSlice(uniqueIDs(in.MainItems)),
		SideItems:      datatypes.NewJSONSlice(uniqueIDs(in.SideItems)),
		Extras:         datatypes.NewJSONSlice(uniqueIDs(in.Extras)),
		FullDabbaPrice: in.FullDabbaPrice,
		MaxDabbas:      in.MaxDabbas,
		TodaysSpecial:  strings.TrimSpace(in.TodaysSpecial),
		CookingStyle:   strings.TrimSpace(in.CookingStyle),
		IsActive:       true,
	}

	ids := uniqueIDs(menu.ItemIDs())
	if len(ids) > 0 {
		items, err := s.Repo.ItemsByIDs(ctx, vendorID, ids)
		if err != nil {
			return nil, err
		}
		if len(items) != len(ids) {
			return nil, Validation("Menu references unknown menu items")
		}
		menu.IsVegOnly = true
		for _, it := range items {
			if !it.IsVegetarian {
				menu.IsVegOnly = false
				break
			}
		}
	}

	if err := s.Repo.Create(ctx, &menu); err != nil {
		return nil, err
	}
	view := NewMenuView(&menu)
	return &view, nil
}

func uniqueIDs(ids []uint) []uint {
	out := make([]uint, 0, len(ids))
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if id != 0 && !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func (s *CatalogService) ListMenus(ctx context.Context, vendorID uint, day *time.Time) ([]MenuView, error) {
	menus, err := s.Repo.ListForVendor(ctx, vendorID, day)
	if err != nil {
		return nil, err
	}
	return menuViews(menus), nil
}

func (s *CatalogService) SetMenuActive(ctx context.Context, vendorID, menuID uint, active bool) error {
	ok, err := s.Repo.SetActive(ctx, vendorID, menuID, active)
	if err != nil {
		return err
	}
	if !ok {
		return NotFound("Menu not found")
	}
	return nil
}

// PublicMenus lists what consumers can order right now.
func (s *CatalogService) PublicMenus(ctx context.Context, day *time.Time) ([]MenuView, error) {
	menus, err := s.Repo.ListPublic(ctx, day)
	if err != nil {
		return nil, err
	}
	return menuViews(menus), nil
}

func menuViews(menus []entity.Menu) []MenuView {
	out := make([]MenuView, 0, len(menus))
	for i := range menus {
		out = append(out, NewMenuView(&menus[i]))
	}
	return out
}

func (s *CatalogService) Dashboard(ctx context.Context, vendorID uint) (*Dashboard, error) {
	vendor, err := s.VendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		return nil, notFoundOr(err, "Tiffin vendor profile not found")
	}
	counts, err := s.Repo.CountsForVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	recent, err := s.Repo.RecentForVendor(ctx, vendorID, 5)
	if err != nil {
		return nil, err
	}
	return &Dashboard{
		VendorInfo: NewVendorProfile(vendor),
		Statistics: DashboardStats{
			TotalMenuItems:  counts.MenuItems,
			ActiveMenuItems: counts.ActiveMenuItems,
			TotalMenus:      counts.Menus,
			ActiveMenus:     counts.ActiveMenus,
		},
		RecentMenus: menuViews(recent),
	}, nil
}
