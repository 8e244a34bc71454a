package sysinfo

import (
	"reflect"
	"testing"
)

func TestParseXrandr(t *testing.T) {
	out := []byte(`Screen 0: minimum 320 x 200, current 4480 x 1440, maximum 16384 x 16384
eDP-1 connected primary 1920x1080+0+360 (normal left inverted right x axis y axis) 309mm x 174mm
   1920x1080     60.01*+  59.93
HDMI-1 disconnected (normal left inverted right x axis y axis)
DP-1 connected 2560x1440+1920+0 (normal left inverted right x axis y axis) 597mm x 336mm
DP-2 connected (normal left inverted right x axis y axis)
`)
	want := []string{"1920x1080", "2560x1440"}
	if got := parseXrandr(out); !reflect.DeepEqual(got, want) {
		t.Fatalf("parseXrandr() = %q; want %q", got, want)
	}
	if got := parseXrandr(nil); len(got) != 0 {
		t.Fatalf("parseXrandr(nil) = %q; want none", got)
	}
}

func TestParseLspci(t *testing.T) {
	out := []byte(`00:00.0 "Host bridge" "Intel Corporation" "Xeon E3-1200 v6/7th Gen Core Processor Host Bridge/DRAM Registers" -r08 "Lenovo" "Device 2258"
00:02.0 "VGA compatible controller" "Intel Corporation" "UHD Graphics 620" -r07 -p00 "Lenovo" "Device 2258"
01:00.0 "3D controller" "NVIDIA Corporation" "GP108M [GeForce MX150]" -ra1 "Lenovo" "Device 2258"
02:00.0 "Network controller" "Intel Corporation" "Wireless 8265 / 8275" -r78 "Intel Corporation" "Dual Band Wireless-AC 8265"
`)
	want := []string{
		"Intel Corporation UHD Graphics 620",
		"NVIDIA Corporation GP108M [GeForce MX150]",
	}
	if got := parseLspci(out); !reflect.DeepEqual(got, want) {
		t.Fatalf("parseLspci() = %q; want %q", got, want)
	}
}

func TestSplitQuoted(t *testing.T) {
	got := splitQuoted(`00:02.0 "VGA compatible controller" "" -r07`)
	want := []string{"00:02.0", "VGA compatible controller", "", "-r07"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("splitQuoted() = %q; want %q", got, want)
	}
}

const profilerIntel = `Graphics/Displays:

    Intel Iris Plus Graphics 655:

      Chipset Model: Intel Iris Plus Graphics 655
      Type: GPU
      Bus: Built-In
      VRAM (Dynamic, Max): 1536 MB
      Vendor: Intel
      Displays:
        Color LCD:
          Display Type: Built-In Retina LCD
          Resolution: 2560 x 1600 Retina
          Main Display: Yes
        DELL U2720Q:
          Resolution: 3840 x 2160 (2160p/4K UHD 1 - Ultra High Definition)
`

const profilerAppleSilicon = `Graphics/Displays:

    Apple M1 Pro:

      Chipset Model: Apple M1 Pro
      Type: GPU
      Bus: Built-In
      Total Number of Cores: 16
      Vendor: Apple (0x106b)
      Metal Support: Metal 3
      Displays:
        Color LCD:
          Display Type: Built-in Liquid Retina XDR Display
          Resolution: 3456 x 2234 Retina
`

func TestParseSystemProfilerGPUs(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want []string
	}{
		{"intel", profilerIntel, []string{"Intel Iris Plus Graphics 655 (1536 MB VRAM)"}},
		{"apple silicon", profilerAppleSilicon, []string{"Apple M1 Pro"}},
		{"empty", "", nil},
	}

	for _, tc := range tests {
		if got := parseSystemProfilerGPUs([]byte(tc.out)); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("%s: parseSystemProfilerGPUs() = %q; want %q", tc.name, got, tc.want)
		}
	}
}

func TestParseSystemProfilerResolutions(t *testing.T) {
	want := []string{"2560x1600", "3840x2160"}
	if got := parseSystemProfilerResolutions([]byte(profilerIntel)); !reflect.DeepEqual(got, want) {
		t.Fatalf("parseSystemProfilerResolutions() = %q; want %q", got, want)
	}
}

func TestParseCIMNames(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want []string
	}{
		{"single", `{"Name":"NVIDIA GeForce RTX 3070"}`, []string{"NVIDIA GeForce RTX 3070"}},
		{"array", `[{"Name":"Intel(R) UHD Graphics 630"},{"Name":"NVIDIA GeForce GTX 1650"}]`, []string{"Intel(R) UHD Graphics 630", "NVIDIA GeForce GTX 1650"}},
		{"basic adapter dropped", `[{"Name":"Microsoft Basic Display Adapter"},{"Name":"AMD Radeon RX 6600"}]`, []string{"AMD Radeon RX 6600"}},
	}

	for _, tc := range tests {
		got, err := parseCIMNames([]byte(tc.out))
		if err != nil {
			t.Fatalf("%s: parseCIMNames() error: %v", tc.name, err)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("%s: parseCIMNames() = %q; want %q", tc.name, got, tc.want)
		}
	}

	if _, err := parseCIMNames([]byte("not json")); err == nil {
		t.Fatalf("parseCIMNames(invalid) returned no error")
	}
}
