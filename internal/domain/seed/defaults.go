package seed

// DefaultManifest returns the built-in demo tree: a Documents folder and a
// few files under the root, one of them annotated.
func DefaultManifest() *Manifest {
	return &Manifest{
		Folders: []FolderSpec{
			{Path: "Documents"},
		},
		Files: []FileSpec{
			{
				Name: "Welcome.txt",
				Type: "text/plain",
				Size: 1024,
			},
			{
				Name:       "cat-photo.jpg",
				Type:       "image/jpeg",
				Size:       204800,
				URL:        "https://picsum.photos/800/600",
				Comments:   []string{"This is a great photo!"},
				Properties: []string{"Model: Imagen 4.0"},
			},
			{
				Name: "ocean-waves.mp4",
				Type: "video/mp4",
				Size: 15728640,
				URL:  "https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4",
			},
		},
	}
}
