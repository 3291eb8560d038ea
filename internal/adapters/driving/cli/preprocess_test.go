package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cleanhub/internal/core/domain"
	"github.com/custodia-labs/cleanhub/internal/core/ports/driving"
)

func TestPreprocessCmd_Flags(t *testing.T) {
	tests := []struct {
		name string
		def  string
	}{
		{"input-glob", "data/raw/*.txt"},
		{"outdir", "data/processed"},
		{"normalize-numerals", "false"},
		{"keep-case", "false"},
		{"keep-punctuation", "false"},
		{"strategy", ""},
		{"watch", "false"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := preprocessCmd.Flags().Lookup(tt.name)
			require.NotNil(t, flag)
			assert.Equal(t, tt.def, flag.DefValue)
		})
	}
}

func TestPreprocessCmd_Defaults(t *testing.T) {
	svc, cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("preprocess")

	require.NoError(t, err)
	assert.Contains(t, out, "Cleaned 2 files → data/processed")
	assert.Equal(t, "data/raw/*.txt", svc.preprocess.glob)
	assert.Equal(t, "data/processed", svc.preprocess.outDir)
	assert.Equal(t, domain.CleaningConfig{
		Lowercase:         true,
		StripPunctuation:  true,
		NormalizeNumerals: false,
	}, svc.preprocess.cfg)
	assert.False(t, svc.preprocess.watched)

	assert.Equal(t, []string{"data:data/processed"}, svc.cloud.downloads)
	assert.Equal(t, []string{"data:data/processed"}, svc.cloud.uploads)

	require.Len(t, svc.runs.finished, 1)
	assert.Equal(t, "preprocess", svc.runs.finished[0].Command)
	assert.Equal(t, domain.RunStatusOK, svc.runs.finished[0].Status)
	assert.Equal(t, "2 files, 5 lines", svc.runs.finished[0].Detail)
}

func TestPreprocessCmd_CleaningFlags(t *testing.T) {
	svc, cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("preprocess",
		"--input-glob", "raw/**/*.txt",
		"--outdir", "out",
		"--keep-case",
		"--keep-punctuation",
		"--normalize-numerals",
		"--strategy", "ethiopic-nfc",
	)

	require.NoError(t, err)
	assert.Equal(t, "raw/**/*.txt", svc.preprocess.glob)
	assert.Equal(t, "out", svc.preprocess.outDir)
	assert.Equal(t, domain.CleaningConfig{
		Lowercase:         false,
		StripPunctuation:  false,
		NormalizeNumerals: true,
		Strategy:          "ethiopic-nfc",
	}, svc.preprocess.cfg)
}

func TestPreprocessCmd_SettingsLayering(t *testing.T) {
	yes, no := true, false

	tests := []struct {
		name     string
		cleaning domain.CleaningSettings
		args     []string
		want     domain.CleaningConfig
	}{
		{
			name:     "config overrides defaults",
			cleaning: domain.CleaningSettings{NormalizeNumerals: &yes, Lowercase: &no, Strategy: "ethiopic-nfc"},
			want: domain.CleaningConfig{
				Lowercase:         false,
				StripPunctuation:  true,
				NormalizeNumerals: true,
				Strategy:          "ethiopic-nfc",
			},
		},
		{
			name:     "explicit flags override config",
			cleaning: domain.CleaningSettings{NormalizeNumerals: &yes, Lowercase: &no},
			args:     []string{"--normalize-numerals=false", "--keep-case=false"},
			want: domain.CleaningConfig{
				Lowercase:         true,
				StripPunctuation:  true,
				NormalizeNumerals: false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, cleanup := setupTestServices()
			defer cleanup()
			settings = &domain.Settings{Cleaning: tt.cleaning}

			_, err := executeCommand(append([]string{"preprocess"}, tt.args...)...)

			require.NoError(t, err)
			assert.Equal(t, tt.want, svc.preprocess.cfg)
		})
	}
}

func TestPreprocessCmd_Failure(t *testing.T) {
	svc, cleanup := setupTestServices()
	defer cleanup()
	svc.preprocess.err = domain.ErrNotFound

	_, err := executeCommand("preprocess")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Contains(t, err.Error(), "preprocess failed")
	assert.Empty(t, svc.cloud.uploads)

	require.Len(t, svc.runs.finished, 1)
	assert.Equal(t, domain.RunStatusFailed, svc.runs.finished[0].Status)
}

func TestPreprocessCmd_Watch(t *testing.T) {
	svc, cleanup := setupTestServices()
	defer cleanup()
	svc.preprocess.watchEvent = &driving.WatchEvent{Input: "raw/a.txt", Output: "out/a.txt", Lines: 3}

	out, err := executeCommand("preprocess", "--watch", "--outdir", "out")

	require.NoError(t, err)
	assert.True(t, svc.preprocess.watched)
	assert.Contains(t, out, "Watching data/raw/*.txt")
	assert.Contains(t, out, "Cleaned raw/a.txt → out/a.txt (3 lines)")
}

func TestPreprocessCmd_WatchReportsErrors(t *testing.T) {
	svc, cleanup := setupTestServices()
	defer cleanup()
	svc.preprocess.watchEvent = &driving.WatchEvent{Input: "raw/bad.txt", Err: errors.New("permission denied")}

	out, err := executeCommand("preprocess", "--watch")

	require.NoError(t, err)
	assert.Contains(t, out, "Failed to clean raw/bad.txt: permission denied")
}

func TestPreprocessCmd_NoService(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	preprocessService = nil

	_, err := executeCommand("preprocess")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "preprocess service not configured")
}

func TestPreprocessCmd_RejectsArgs(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("preprocess", "extra")

	assert.Error(t, err)
}
