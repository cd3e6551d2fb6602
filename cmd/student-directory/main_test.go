package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/student-directory/internal/config"
	"github.com/aanand-mishra/student-directory/internal/storage/memory"
	"github.com/aanand-mishra/student-directory/internal/storage/sqlite"
)

func TestNewStorage(t *testing.T) {
	tests := []struct {
		name    string
		storage config.Storage
		check   func(t *testing.T, got any)
		wantErr bool
	}{
		{
			name:    "memory",
			storage: config.Storage{Backend: config.BackendMemory},
			check: func(t *testing.T, got any) {
				assert.IsType(t, &memory.Memory{}, got)
			},
		},
		{
			name:    "sqlite",
			storage: config.Storage{Backend: config.BackendSQLite, Path: ":memory:"},
			check: func(t *testing.T, got any) {
				assert.IsType(t, &sqlite.SQLite{}, got)
			},
		},
		{
			name:    "unknown",
			storage: config.Storage{Backend: "redis"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, closer, err := newStorage(&config.Config{Storage: tt.storage})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer closer.Close()

			tt.check(t, store)

			students, err := store.GetStudents()
			require.NoError(t, err)
			assert.Empty(t, students)
		})
	}
}
