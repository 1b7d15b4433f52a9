package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// TestNewRegistry проверяет создание пустого реестра
func TestNewRegistry(t *testing.T) {
	// Act
	registry := NewRegistry()

	// Assert
	require.NotNil(t, registry)
	assert.NotNil(t, registry.links)
	assert.Empty(t, registry.links, "Expected empty registry")
}

// TestRegistry_Create_Success проверяет успешное создание записи
func TestRegistry_Create_Success(t *testing.T) {
	tests := []struct {
		name     string
		code     model.Code
		url      model.URL
		validity time.Duration
	}{
		{
			name:     "Simple create",
			code:     "abc12",
			url:      "https://example.com",
			validity: 30 * time.Minute,
		},
		{
			name:     "URL with query params",
			code:     "qwerty12",
			url:      "https://example.com?param=value&other=test",
			validity: time.Minute,
		},
		{
			name:     "Single character code",
			code:     "a",
			url:      "https://example.com/путь",
			validity: 24 * time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			registry := NewRegistry()

			// Act
			record, err := registry.Create(tt.code, tt.url, testNow, tt.validity)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.code, record.Code)
			assert.Equal(t, tt.url, record.OriginalURL)
			assert.Equal(t, testNow, record.CreatedAt)
			assert.Equal(t, testNow.Add(tt.validity), record.ExpiresAt)
			assert.Equal(t, int64(0), record.ClickCount)
			assert.True(t, record.ExpiresAt.After(record.CreatedAt))
		})
	}
}

// TestRegistry_Create_Duplicate проверяет, что существующая запись не перезаписывается
func TestRegistry_Create_Duplicate(t *testing.T) {
	// Arrange
	registry := NewRegistry()
	code := model.Code("abc123")

	_, err := registry.Create(code, "https://example.com/first", testNow, time.Minute)
	require.NoError(t, err)

	// Act
	_, err = registry.Create(code, "https://example.com/second", testNow, time.Minute)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.Contains(t, err.Error(), string(code))

	record, err := registry.Get(code)
	require.NoError(t, err)
	assert.Equal(t, model.URL("https://example.com/first"), record.OriginalURL)
}

// TestRegistry_Create_DuplicateOfExpired проверяет, что истёкший код тоже занят
func TestRegistry_Create_DuplicateOfExpired(t *testing.T) {
	// Arrange
	registry := NewRegistry()
	code := model.Code("old1")

	_, err := registry.Create(code, "https://example.com/old", testNow.Add(-time.Hour), time.Minute)
	require.NoError(t, err)

	record, err := registry.Get(code)
	require.NoError(t, err)
	require.True(t, registry.IsExpired(record, testNow))

	// Act
	_, err = registry.Create(code, "https://example.com/new", testNow, time.Minute)

	// Assert
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

// TestRegistry_Get_NotFound проверяет ошибку для несуществующего кода
func TestRegistry_Get_NotFound(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Get("missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "missing")
}

// TestRegistry_IsExpired проверяет строгую границу срока действия
func TestRegistry_IsExpired(t *testing.T) {
	registry := NewRegistry()
	record, err := registry.Create("edge", "https://example.com", testNow, time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name     string
		now      time.Time
		expected bool
	}{
		{name: "Right after creation", now: testNow, expected: false},
		{name: "Exactly at expiry", now: record.ExpiresAt, expected: false},
		{name: "One nanosecond after expiry", now: record.ExpiresAt.Add(time.Nanosecond), expected: true},
		{name: "Long after expiry", now: record.ExpiresAt.Add(time.Hour), expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, registry.IsExpired(record, tt.now))
		})
	}
}

// TestRegistry_IncrementClick проверяет инкремент счётчика
func TestRegistry_IncrementClick(t *testing.T) {
	registry := NewRegistry()
	_, err := registry.Create("click1", "https://example.com", testNow, time.Minute)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, registry.IncrementClick("click1"))
	}

	record, err := registry.Get("click1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), record.ClickCount)

	err = registry.IncrementClick("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestRegistry_GetReturnsSnapshot проверяет, что изменения снимка не влияют на реестр
func TestRegistry_GetReturnsSnapshot(t *testing.T) {
	registry := NewRegistry()
	_, err := registry.Create("snap", "https://example.com", testNow, time.Minute)
	require.NoError(t, err)

	record, err := registry.Get("snap")
	require.NoError(t, err)
	record.OriginalURL = "https://evil.example.com"
	record.ClickCount = 100

	stored, err := registry.Get("snap")
	require.NoError(t, err)
	assert.Equal(t, model.URL("https://example.com"), stored.OriginalURL)
	assert.Equal(t, int64(0), stored.ClickCount)
}

// TestRegistry_ConcurrentCreateSameCode проверяет, что из параллельных созданий побеждает ровно одно
func TestRegistry_ConcurrentCreateSameCode(t *testing.T) {
	registry := NewRegistry()
	numGoroutines := 50

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := registry.Create("same", model.URL(fmt.Sprintf("https://example.com/%d", id)), testNow, time.Minute)

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++
			} else if assert.ErrorIs(t, err, ErrAlreadyExists) {
				conflicts++
			}
		}(i)
	}

	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, numGoroutines-1, conflicts)
	assert.Len(t, registry.links, 1)
}

// TestRegistry_ConcurrentIncrements проверяет отсутствие потерянных инкрементов
func TestRegistry_ConcurrentIncrements(t *testing.T) {
	registry := NewRegistry()
	_, err := registry.Create("hot", "https://example.com", testNow, time.Minute)
	require.NoError(t, err)

	numGoroutines := 100
	wg := sync.WaitGroup{}
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			assert.NoError(t, registry.IncrementClick("hot"))
		}()
	}

	wg.Wait()

	record, err := registry.Get("hot")
	require.NoError(t, err)
	assert.Equal(t, int64(numGoroutines), record.ClickCount)
}
