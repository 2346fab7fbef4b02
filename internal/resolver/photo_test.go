package resolver

import "testing"

func TestBuildPhotoURL(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		bioguideID string
		want       string
	}{
		{
			name:       "standard_id",
			bioguideID: "P000197",
			want:       "https://theunitedstates.io/images/congress/450x550/P000197.jpg|https://bioguide-cloudfront.house.gov/bioguide/photo/P/P000197.jpg",
		},
		{
			name:       "lowercase_id_uppercases_shard",
			bioguideID: "o000174",
			want:       "https://theunitedstates.io/images/congress/450x550/o000174.jpg|https://bioguide-cloudfront.house.gov/bioguide/photo/O/o000174.jpg",
		},
		{
			name:       "empty_id",
			bioguideID: "",
			want:       "",
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := BuildPhotoURL(tc.bioguideID); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
