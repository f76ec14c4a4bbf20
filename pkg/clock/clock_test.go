package clock

import (
	"testing"
	"time"
)

func TestSetTimeZone(t *testing.T) {
	orig := time.Local
	t.Cleanup(func() {
		time.Local = orig
	})

	type args struct {
		timeZone string
	}
	tests := []struct {
		name    string
		args    args
		want    string
		wantErr bool
	}{
		{
			name: "valid timezone",
			args: args{
				timeZone: "Asia/Tokyo",
			},
			want: "Asia/Tokyo",
		},
		{
			name: "invalid timezone keeps the previous one",
			args: args{
				timeZone: "Invalid",
			},
			want:    "Asia/Tokyo",
			wantErr: true,
		},
		{
			name: "UTC",
			args: args{
				timeZone: "UTC",
			},
			want: "UTC",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := SetTimeZone(tt.args.timeZone); (err != nil) != tt.wantErr {
				t.Errorf("SetTimeZone() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got := time.Local.String(); got != tt.want {
				t.Errorf("SetTimeZone() got = %v, want = %v", got, tt.want)
			}
		})
	}
}

func TestLoadLocation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		timeZone string
		want     string
		wantErr  bool
	}{
		{
			name:     "valid timezone",
			timeZone: "Europe/Berlin",
			want:     "Europe/Berlin",
		},
		{
			name:     "invalid timezone",
			timeZone: "Not/AZone",
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadLocation(tt.timeZone)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadLocation() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got.String() != tt.want {
				t.Errorf("LoadLocation() got = %v, want = %v", got, tt.want)
			}
		})
	}
}

func TestFixed(t *testing.T) {
	t.Parallel()

	tm := time.Unix(1480355498, 988_000_000)
	c := Fixed(tm)
	for i := 0; i < 2; i++ {
		if got := c.Now(); !got.Equal(tm) {
			t.Errorf("Fixed().Now() = %v, want %v", got, tm)
		}
	}
}

func TestSystem(t *testing.T) {
	tm := time.Unix(1417011228, 0)
	MockTime(t, tm)

	if got := System.Now(); !got.Equal(tm) {
		t.Errorf("System.Now() = %v, want %v", got, tm)
	}
}
