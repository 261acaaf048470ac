package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"three-spheres", "Three Spheres"},
		{"mirror_ball", "Mirror Ball"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, titleCase(tc.input))
		})
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := ByName(name)
			require.NoError(t, err)
			assert.NotEmpty(t, s.Spheres)
			assert.NoError(t, s.Validate())
		})
	}
}

func TestByNameUnknown(t *testing.T) {
	_, err := ByName("no-such-scene")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownScene))
}

func TestParseFileMetadata(t *testing.T) {
	dir := t.TempDir()

	testCases := []struct {
		name     string
		content  string
		expected SceneInfo
	}{
		{
			name: "complete.yaml",
			content: `name: Mirror Hall
description: Two mirrors facing each other
group: Mirrors
materials: []
spheres: []
`,
			expected: SceneInfo{
				ID:          "yaml:complete",
				Name:        "Mirror Hall",
				Description: "Two mirrors facing each other",
				Group:       "Mirrors",
				Type:        "yaml",
			},
		},
		{
			name:    "no-metadata.yaml",
			content: "spheres: []\n",
			expected: SceneInfo{
				ID:    "yaml:no-metadata",
				Name:  "No Metadata",
				Group: "Scene Files",
				Type:  "yaml",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name)
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0644))

			info, err := ParseFileMetadata(path)
			require.NoError(t, err)

			tc.expected.FilePath = path
			assert.Equal(t, tc.expected, info)
		})
	}
}

func TestListSceneDirSkipsInvalidFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good.yaml"), []byte("name: Good\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yml"), []byte("spheres: [\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("name: Nope\n"), 0644))

	scenes, err := listSceneDir(dir)
	require.NoError(t, err)
	require.Len(t, scenes, 1)
	assert.Equal(t, "Good", scenes[0].Name)
}

func TestListAllScenes(t *testing.T) {
	response, err := ListAllScenes()
	require.NoError(t, err)
	require.NotEmpty(t, response.Groups)

	builtins := response.Groups[0]
	assert.Equal(t, "Built-in Scenes", builtins.Name)
	require.Len(t, builtins.Scenes, len(Names()))
	for i, info := range builtins.Scenes {
		assert.Equal(t, Names()[i], info.ID)
		assert.Equal(t, "builtin", info.Type)
	}
}
