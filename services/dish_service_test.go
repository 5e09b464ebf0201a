package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/malika-s1/restoranchec/entity"
	"github.com/malika-s1/restoranchec/repository"
)

func newDishService(t *testing.T) (*DishService, *gorm.DB, uint) {
	t.Helper()
	db := newTestDB(t)

	cat := entity.Category{Name: "Супы"}
	require.NoError(t, db.Create(&cat).Error)

	svc := NewDishService(
		repository.NewDishRepository(db),
		repository.NewCategoryRepository(db),
		t.TempDir(),
	)
	return svc, db, cat.ID
}

func TestDishService_CreateValidation(t *testing.T) {
	svc, _, catID := newDishService(t)

	tests := []struct {
		name string
		in   CreateDishInput
		want error
	}{
		{
			name: "missing name",
			in:   CreateDishInput{Composition: "x", Price: 100, Weight: 200, CategoryID: catID},
			want: ErrValidation,
		},
		{
			name: "non-positive price",
			in:   CreateDishInput{Name: "Борщ", Composition: "x", Price: 0, Weight: 200, CategoryID: catID},
			want: ErrValidation,
		},
		{
			name: "unknown category",
			in:   CreateDishInput{Name: "Борщ", Composition: "x", Price: 100, Weight: 200, CategoryID: 999},
			want: ErrCategoryNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDishService_CreateTypedFields(t *testing.T) {
	svc, _, catID := newDishService(t)

	dish, err := svc.Create(CreateDishInput{
		Name:        "Стейк",
		Composition: "говядина",
		Price:       150.5,
		Weight:      300,
		CategoryID:  catID,
	})
	require.NoError(t, err)
	assert.Equal(t, 150.5, dish.Price)
	assert.Equal(t, 300, dish.Weight)
	assert.Equal(t, "Супы", dish.CategoryName)
}

func TestDishService_PartialUpdateKeepsOmittedFields(t *testing.T) {
	svc, _, catID := newDishService(t)

	dish, err := svc.Create(CreateDishInput{
		Name: "Борщ", Composition: "свёкла, капуста", Price: 250, Weight: 350, CategoryID: catID,
	})
	require.NoError(t, err)

	newPrice := 199.9
	updated, err := svc.Update(dish.ID, UpdateDishInput{Price: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, 199.9, updated.Price)
	assert.Equal(t, "Борщ", updated.Name)
	assert.Equal(t, "свёкла, капуста", updated.Composition)
	assert.Equal(t, 350, updated.Weight)
	assert.Equal(t, catID, updated.CategoryID)
}

func TestDishService_UpdateNotFound(t *testing.T) {
	svc, _, _ := newDishService(t)

	name := "x"
	_, err := svc.Update(123, UpdateDishInput{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDishService_ReplaceImageDeletesOldFile(t *testing.T) {
	svc, _, catID := newDishService(t)

	oldFile := filepath.Join(svc.UploadDir, "old.jpg")
	require.NoError(t, os.WriteFile(oldFile, []byte("img"), 0o644))
	oldPath := "/uploads/old.jpg"

	dish, err := svc.Create(CreateDishInput{
		Name: "Борщ", Composition: "x", Price: 250, Weight: 350, CategoryID: catID, ImagePath: &oldPath,
	})
	require.NoError(t, err)

	newPath := "/uploads/new.jpg"
	updated, err := svc.Update(dish.ID, UpdateDishInput{ImagePath: &newPath})
	require.NoError(t, err)
	require.NotNil(t, updated.ImagePath)
	assert.Equal(t, newPath, *updated.ImagePath)

	_, statErr := os.Stat(oldFile)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDishService_DeleteRemovesImageFile(t *testing.T) {
	svc, db, catID := newDishService(t)

	file := filepath.Join(svc.UploadDir, "dish.png")
	require.NoError(t, os.WriteFile(file, []byte("img"), 0o644))
	path := "/uploads/dish.png"

	dish, err := svc.Create(CreateDishInput{
		Name: "Борщ", Composition: "x", Price: 250, Weight: 350, CategoryID: catID, ImagePath: &path,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(dish.ID))

	_, statErr := os.Stat(file)
	assert.True(t, os.IsNotExist(statErr))

	var count int64
	db.Model(&entity.Dish{}).Count(&count)
	assert.EqualValues(t, 0, count)

	assert.ErrorIs(t, svc.Delete(dish.ID), ErrNotFound)
}

func TestDishService_ListFiltersAndSorting(t *testing.T) {
	svc, db, catID := newDishService(t)

	other := entity.Category{Name: "Напитки"}
	require.NoError(t, db.Create(&other).Error)

	seed := []entity.Dish{
		{Name: "Borscht", Composition: "x", Price: 250, Weight: 350, CategoryID: catID},
		{Name: "Chicken Bouillon", Composition: "x", Price: 180, Weight: 300, CategoryID: catID},
		{Name: "Mors", Composition: "x", Price: 90, Weight: 250, CategoryID: other.ID},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	t.Run("filter by category", func(t *testing.T) {
		got, err := svc.List(repository.DishFilter{CategoryID: other.ID})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Mors", got[0].Name)
		assert.Equal(t, "Напитки", got[0].CategoryName)
	})

	t.Run("case-insensitive search", func(t *testing.T) {
		got, err := svc.List(repository.DishFilter{Search: "bOuIlLoN"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Chicken Bouillon", got[0].Name)
	})

	t.Run("sort by price desc", func(t *testing.T) {
		got, err := svc.List(repository.DishFilter{SortBy: "price", SortOrder: "desc"})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, 250.0, got[0].Price)
		assert.Equal(t, 90.0, got[2].Price)
	})

	t.Run("unknown sort falls back to name asc", func(t *testing.T) {
		got, err := svc.List(repository.DishFilter{SortBy: "id; DROP TABLE dishes", SortOrder: "sideways"})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "Borscht", got[0].Name)
		assert.Equal(t, "Chicken Bouillon", got[1].Name)
		assert.Equal(t, "Mors", got[2].Name)
	})
}
