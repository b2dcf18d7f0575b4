package student

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/students-service/internal/storage/memory"
	"github.com/aanand-mishra/students-service/internal/types"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) ListStudents(ctx context.Context) ([]types.Student, error) {
	args := m.Called(ctx)
	return args.Get(0).([]types.Student), args.Error(1)
}

func (m *mockStore) GetStudentByID(ctx context.Context, id int64) (types.Student, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(types.Student), args.Bool(1), args.Error(2)
}

func (m *mockStore) SaveStudent(ctx context.Context, s types.Student) (types.Student, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(types.Student), args.Error(1)
}

func (m *mockStore) DeleteStudentByID(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockStore) ExistsStudentByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockStore) ExistsStudentByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockStore) Ping(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *mockStore) Close() error { return m.Called().Error(0) }

func arno() types.Student {
	return types.Student{Name: "Arno", Email: "arno@student.com", Gender: types.GenderMale}
}

func TestListAll(t *testing.T) {
	ctx := context.Background()
	store := new(mockStore)
	want := []types.Student{{ID: 1, Name: "Arno", Email: "arno@student.com", Gender: types.GenderMale}}
	store.On("ListStudents", ctx).Return(want, nil)

	got, err := NewService(store).ListAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, got)
	store.AssertExpectations(t)
}

func TestFindByID(t *testing.T) {
	ctx := context.Background()
	store := new(mockStore)
	want := types.Student{ID: 7, Name: "Arno", Email: "arno@student.com", Gender: types.GenderMale}
	store.On("GetStudentByID", ctx, int64(7)).Return(want, true, nil)
	store.On("GetStudentByID", ctx, int64(8)).Return(types.Student{}, false, nil)

	svc := NewService(store)

	got, found, err := svc.FindByID(ctx, 7)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, got)

	_, found, err = svc.FindByID(ctx, 8)
	require.NoError(t, err)
	assert.False(t, found)

	store.AssertExpectations(t)
}

func TestAdd(t *testing.T) {
	ctx := context.Background()
	store := new(mockStore)
	student := arno()
	saved := student
	saved.ID = 1

	store.On("ExistsStudentByEmail", ctx, student.Email).Return(false, nil)
	store.On("SaveStudent", ctx, student).Return(saved, nil)

	got, err := NewService(store).Add(ctx, student)

	require.NoError(t, err)
	assert.Equal(t, saved, got)
	store.AssertNumberOfCalls(t, "SaveStudent", 1)
	store.AssertExpectations(t)
}

func TestAddEmailTaken(t *testing.T) {
	ctx := context.Background()
	store := new(mockStore)
	student := arno()

	store.On("ExistsStudentByEmail", ctx, student.Email).Return(true, nil)

	_, err := NewService(store).Add(ctx, student)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.EqualError(t, err, "email arno@student.com taken")

	var dup *DuplicateEmailError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, student.Email, dup.Email)

	store.AssertNotCalled(t, "SaveStudent", mock.Anything, mock.Anything)
}

func TestAddPropagatesStoreError(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("connection refused")

	t.Run("email check", func(t *testing.T) {
		store := new(mockStore)
		store.On("ExistsStudentByEmail", ctx, mock.Anything).Return(false, storeErr)

		_, err := NewService(store).Add(ctx, arno())

		assert.ErrorIs(t, err, storeErr)
		assert.NotErrorIs(t, err, ErrDuplicateEmail)
		store.AssertNotCalled(t, "SaveStudent", mock.Anything, mock.Anything)
	})

	t.Run("save", func(t *testing.T) {
		store := new(mockStore)
		store.On("ExistsStudentByEmail", ctx, mock.Anything).Return(false, nil)
		store.On("SaveStudent", ctx, mock.Anything).Return(types.Student{}, storeErr)

		_, err := NewService(store).Add(ctx, arno())

		assert.ErrorIs(t, err, storeErr)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	store := new(mockStore)
	var id int64 = 10

	store.On("ExistsStudentByID", ctx, id).Return(true, nil)
	store.On("DeleteStudentByID", ctx, id).Return(nil)

	err := NewService(store).Delete(ctx, id)

	require.NoError(t, err)
	store.AssertNumberOfCalls(t, "DeleteStudentByID", 1)
	store.AssertCalled(t, "DeleteStudentByID", ctx, id)
}

func TestDeleteNotFound(t *testing.T) {
	ctx := context.Background()
	store := new(mockStore)
	var id int64 = 10

	store.On("ExistsStudentByID", ctx, id).Return(false, nil)

	err := NewService(store).Delete(ctx, id)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, fmt.Sprintf("student with id %d does not exist", id))

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, id, nf.ID)

	store.AssertNotCalled(t, "DeleteStudentByID", mock.Anything, mock.Anything)
}

func TestDeletePropagatesStoreError(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("connection refused")
	store := new(mockStore)
	store.On("ExistsStudentByID", ctx, int64(3)).Return(false, storeErr)

	err := NewService(store).Delete(ctx, 3)

	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrNotFound)
	store.AssertNotCalled(t, "DeleteStudentByID", mock.Anything, mock.Anything)
}

// The remaining tests drive the service against a real in-memory store
// and check the observable state rather than the calls made.

func TestScenarioAgainstMemoryStore(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.New())

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	saved, err := svc.Add(ctx, arno())
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.Equal(t, "Arno", saved.Name)
	assert.Equal(t, "arno@student.com", saved.Email)
	assert.Equal(t, types.GenderMale, saved.Gender)

	found, ok, err := svc.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, saved, found)

	_, err = svc.Add(ctx, arno())
	var dup *DuplicateEmailError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "arno@student.com", dup.Email)

	all, err = svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	err = svc.Delete(ctx, saved.ID+100)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, saved.ID+100, nf.ID)

	require.NoError(t, svc.Delete(ctx, saved.ID))

	_, ok, err = svc.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListAllAfterAdds(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.New())

	const n = 5
	for i := 0; i < n; i++ {
		_, err := svc.Add(ctx, types.Student{
			Name:   fmt.Sprintf("student %d", i),
			Email:  fmt.Sprintf("student%d@student.com", i),
			Gender: types.GenderFemale,
		})
		require.NoError(t, err)
	}

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, n)
}
