package repository

import (
	"context"
	"time"

	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// ---------------- Menu items ----------------

func (r *MenuRepository) CreateItem(ctx context.Context, item *entity.MenuItem) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

func (r *MenuRepository) ListItems(ctx context.Context, vendorID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("category ASC, name ASC").
		Find(&items).Error
	return items, err
}

func (r *MenuRepository) ItemNameExists(ctx context.Context, vendorID uint, name string) (bool, error) {
	var cnt int64
	err := r.DB.WithContext(ctx).Model(&entity.MenuItem{}).
		Where("vendor_id = ? AND name = ?", vendorID, name).
		Count(&cnt).Error
	return cnt > 0, err
}

// only items owned by the vendor are returned
func (r *MenuRepository) ItemsByIDs(ctx context.Context, vendorID uint, ids []uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	if len(ids) == 0 {
		return items, nil
	}
	err := r.DB.WithContext(ctx).
		Where("vendor_id = ? AND id IN ?", vendorID, ids).
		Find(&items).Error
	return items, err
}

// ---------------- Daily menus ----------------

func (r *MenuRepository) Create(ctx context.Context, menu *entity.Menu) error {
	return r.DB.WithContext(ctx).Create(menu).Error
}

func (r *MenuRepository) FindByID(ctx context.Context, id uint) (*entity.Menu, error) {
	var menu entity.Menu
	if err := r.DB.WithContext(ctx).Preload("Vendor").First(&menu, id).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *MenuRepository) NameDateExists(ctx context.Context, vendorID uint, name string, day time.Time) (bool, error) {
	var cnt int64
	err := r.DB.WithContext(ctx).Model(&entity.Menu{}).
		Where("vendor_id = ? AND name = ? AND date >= ? AND date < ?", vendorID, name, day, day.AddDate(0, 0, 1)).
		Count(&cnt).Error
	return cnt > 0, err
}

// day == nil means every date
func (r *MenuRepository) ListForVendor(ctx context.Context, vendorID uint, day *time.Time) ([]entity.Menu, error) {
	var menus []entity.Menu
	q := r.DB.WithContext(ctx).Where("vendor_id = ?", vendorID)
	if day != nil {
		q = q.Where("date >= ? AND date < ?", *day, day.AddDate(0, 0, 1))
	}
	err := q.Order("date DESC, id DESC").Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) RecentForVendor(ctx context.Context, vendorID uint, limit int) ([]entity.Menu, error) {
	var menus []entity.Menu
	err := r.DB.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("date DESC, id DESC").Limit(limit).
		Find(&menus).Error
	return menus, err
}

// active menus of verified, active vendors
func (r *MenuRepository) ListPublic(ctx context.Context, day *time.Time) ([]entity.Menu, error) {
	var menus []entity.Menu
	q := r.DB.WithContext(ctx).
		Joins("JOIN vendors v ON v.id = menus.vendor_id AND v.deleted_at IS NULL").
		Where("menus.is_active = ? AND v.is_active = ? AND v.is_verified = ?", true, true, true)
	if day != nil {
		q = q.Where("menus.date >= ? AND menus.date < ?", *day, day.AddDate(0, 0, 1))
	}
	err := q.Preload("Vendor").Order("menus.date ASC, menus.id ASC").Find(&menus).Error
	return menus, err
}

type VendorCounts struct {
	MenuItems       int64
	ActiveMenuItems int64
	Menus           int64
	ActiveMenus     int64
}

func (r *MenuRepository) CountsForVendor(ctx context.Context, vendorID uint) (VendorCounts, error) {
	var out VendorCounts
	db := r.DB.WithContext(ctx)
	if err := db.Model(&entity.MenuItem{}).Where("vendor_id = ?", vendorID).Count(&out.MenuItems).Error; err != nil {
		return out, err
	}
	if err := db.Model(&entity.MenuItem{}).Where("vendor_id = ? AND is_available_today = ?", vendorID, true).Count(&out.ActiveMenuItems).Error; err != nil {
		return out, err
	}
	if err := db.Model(&entity.Menu{}).Where("vendor_id = ?", vendorID).Count(&out.Menus).Error; err != nil {
		return out, err
	}
	err := db.Model(&entity.Menu{}).Where("vendor_id = ? AND is_active = ?", vendorID, true).Count(&out.ActiveMenus).Error
	return out, err
}

// IncrementSoldGuard adds qty to dabbas_sold only while capacity allows.
// Zero rows affected means the menu is (now) short of qty dabbas.
func (r *MenuRepository) IncrementSoldGuard(tx *gorm.DB, menuID uint, qty int) (int64, error) {
	res := tx.Model(&entity.Menu{}).
		Where("id = ? AND dabbas_sold + ? <= max_dabbas", menuID, qty).
		Update("dabbas_sold", gorm.Expr("dabbas_sold + ?", qty))
	return res.RowsAffected, res.Error
}

func (r *MenuRepository) Remaining(tx *gorm.DB, menuID uint) (int, error) {
	var m entity.Menu
	if err := tx.Select("id, max_dabbas, dabbas_sold").First(&m, menuID).Error; err != nil {
		return 0, err
	}
	return m.Remaining(), nil
}

// SetActive reports false when the menu is not the vendor's.
func (r *MenuRepository) SetActive(ctx context.Context, vendorID, menuID uint, active bool) (bool, error) {
	res := r.DB.WithContext(ctx).Model(&entity.Menu{}).
		Where("id = ? AND vendor_id = ?", menuID, vendorID).
		Update("is_active", active)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
