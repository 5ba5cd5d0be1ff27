//go:build ignore

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"glowquad/misc"
)

const SettingsPath = "build-settings.txt"

const WebBuildDir = "./web_build"

var BuildTargets = []string{"desktop", "web", "mobile"}

var SettingsList []string
var DefaultSettings = make(map[string]bool)
var SettingsComments = make(map[string]string)

var ReleaseSettings = map[string]bool{
	"pprof": false,
	"opt":   true,
}

func init() {
	setDefault := func(name string, value bool, comment string) {
		SettingsList = append(SettingsList, name)
		DefaultSettings[name] = value
		SettingsComments[name] = comment
	}

	setDefault("pprof", false, "Enable pporf debugging on the desktop build.")
	setDefault("opt", true, "Optimize and inline.")
	setDefault("wasm-opt", false, "Optimize wasm (requires wasm-opt from https://github.com/WebAssembly/binaryen).")
	setDefault("no-vcs", false, "Stop Go compiler from stamp binary with version control information.")
}

func PrintUsage() {
	scriptName := misc.GetScriptName()

	fmt.Printf("\n")
	fmt.Printf("Usage of %s:\n", scriptName)
	fmt.Printf("\n")
	fmt.Printf("go run %s\n", scriptName)
	fmt.Printf("go run %s [target]\n", scriptName)
	fmt.Printf("go run %s release [target]\n", scriptName)
	fmt.Printf("\n")
	fmt.Printf("valid targets:\n")
	fmt.Printf("  desktop\n")
	fmt.Printf("  web\n")
	fmt.Printf("  mobile\n")
	fmt.Printf("  all\n")
	fmt.Printf("\n")
	fmt.Printf("build settings are read from %s\n", SettingsPath)
	fmt.Printf("\n")
	fmt.Printf("but if you do\n")
	fmt.Printf("go run %s release [target]\n", scriptName)
	fmt.Printf("it uses release settings\n")
	fmt.Printf("\n")
}

func main() {
	args := os.Args[1:]

	// print help
	{
		helps := []string{
			"help",
			"-help",
			"--help",
			"h",
			"-h",
			"--h",
		}
		if len(args) > 0 && slices.Contains(helps, args[0]) {
			PrintUsage()
			os.Exit(1)
		}
	}

	var buildTarget = "desktop"
	var useReleaseSetting = false

	// parse flags
	if len(args) == 1 {
		buildTarget = args[0]
	} else if len(args) == 2 {
		if args[0] != "release" {
			misc.ErrLogger.Printf("%s is not a vaid argument", strings.Join(args, " "))
			PrintUsage()
			os.Exit(1)
		} else {
			useReleaseSetting = true
		}
		buildTarget = args[1]
	} else if len(args) > 2 {
		misc.ErrLogger.Printf("too many arguments")
		PrintUsage()
		os.Exit(1)
	}

	if !slices.Contains(BuildTargets, buildTarget) && buildTarget != "all" {
		misc.ErrLogger.Printf("%s is not a vaid target", buildTarget)
		PrintUsage()
		os.Exit(1)
	}

	// if settings file doesn't exist, create one
	if exist, err := misc.CheckFileExists(SettingsPath); err != nil {
		misc.ErrLogger.Printf("could not check if %s file exists: %v", SettingsPath, err)
		os.Exit(1)
	} else if !exist {

		misc.InfoLogger.Printf("couldn't find %s, making a default one", SettingsPath)

		err := SaveSettings(SettingsPath, DefaultSettings)
		if err != nil {
			misc.ErrLogger.Printf("could not write default settings to %s: %v", SettingsPath, err)
			os.Exit(1)
		}
	}

	var settings map[string]bool

	if useReleaseSetting {
		misc.InfoLogger.Printf("using release settings")
		settings = CopySettings(ReleaseSettings)
	} else {
		// load settings
		misc.InfoLogger.Printf("loading settings from %s", SettingsPath)
		var err error
		settings, err = LoadSettings(SettingsPath)

		if err != nil {
			misc.ErrLogger.Printf("failed to load settings : %v", err)
			os.Exit(1)
		}
	}

	// print settings
	{
		nameSize := 0
		for _, name := range SettingsList {
			nameSize = max(nameSize, len(name))
		}
		fmt.Printf("\n")
		for _, name := range SettingsList {
			value := settings[name]
			for len(name) < nameSize {
				name = name + " "
			}
			fmt.Printf("  %v : %v\n", name, value)
		}
		fmt.Printf("\n")
	}

	misc.InfoLogger.Printf("building %s", buildTarget)

	build := func(target string) {
		err, errcode := BuildTarget(settings, target)
		if err != nil {
			misc.ErrLogger.Printf("failed to build for %s: %v", target, err)
			os.Exit(errcode)
		}
	}

	if buildTarget == "all" {
		for _, target := range BuildTargets {
			build(target)
		}
	} else {
		build(buildTarget)
	}
}

func SetMissingSettingsToDefault(settings map[string]bool) {
	for _, name := range SettingsList {
		if _, ok := settings[name]; !ok {
			settings[name] = DefaultSettings[name]
		}
	}
}

func CopySettings(settings map[string]bool) map[string]bool {
	settingsCopy := make(map[string]bool)
	for k, v := range settings {
		settingsCopy[k] = v
	}

	SetMissingSettingsToDefault(settingsCopy)

	return settingsCopy
}

func SaveSettings(path string, settings map[string]bool) error {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "// settings file for building\n")
	fmt.Fprintf(sb, "// lines starting with // are comments\n")
	fmt.Fprintf(sb, "//\n")
	fmt.Fprintf(sb, "// comment/uncomment these settings\n")
	fmt.Fprintf(sb, "\n")
	fmt.Fprintf(sb, "\n")
	for _, settingName := range SettingsList {
		comment := SettingsComments[settingName]
		value := settings[settingName]

		fmt.Fprintf(sb, "// %s\n", comment)
		fmt.Fprintf(sb, "%s %v\n", settingName, value)
		fmt.Fprintf(sb, "\n")
	}
	err := os.WriteFile(path, []byte(sb.String()), 0664)
	if err != nil {
		return err
	}
	return nil
}

func LoadSettings(path string) (map[string]bool, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(file) {
		return nil, fmt.Errorf("not a valid utf8 file")
	}

	text := string(file)
	text = strings.ReplaceAll(text, "\r\n", "\n")

	lines := strings.Split(text, "\n")

	settings := CopySettings(DefaultSettings)

	for i, line := range lines {
		logWarning := func(format string, a ...any) {
			fileAndLine := fmt.Sprintf("%s:%d: ", path, i+1)
			fmt.Fprintf(os.Stderr, fileAndLine+format+"\n", a...)
		}

		trimmed := strings.TrimSpace(line)

		if len(trimmed) <= 0 { // ignore empty line
			continue
		}

		if strings.HasPrefix(trimmed, "//") { // ignore comments
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			logWarning("\"%s\" doesn't have two fields, ignored", line)
			continue
		}

		if _, ok := DefaultSettings[fields[0]]; !ok {
			logWarning("\"%s\" is not a valid option, ignored", fields[0])
			continue
		}

		if fields[1] == "true" {
			settings[fields[0]] = true
		} else if fields[1] == "false" {
			settings[fields[0]] = false
		} else {
			logWarning("\"%s\" is not true or false, ignored", fields[1])
			continue
		}
	}

	SetMissingSettingsToDefault(settings)

	return settings, nil
}

func RunCommand(cmd *exec.Cmd) (error, int) {
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	misc.InfoLogger.Printf("%s", cmd.String())

	fmt.Printf("\n")
	err := cmd.Run()
	fmt.Printf("\n")

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return err, exitErr.ExitCode()
		}
		return err, 1
	}

	return nil, 0
}

func BuildTarget(settings map[string]bool, target string) (error, int) {
	tags := ""

	if settings["pprof"] && target == "desktop" {
		tags += "glowpprof,"
	}

	gcFlags := "-e -l -N"
	if settings["opt"] {
		gcFlags = "-e"
	}

	var pkg, dst string

	switch target {
	case "desktop":
		pkg, dst = ".", "glowquad"
	case "mobile":
		pkg, dst = "./cmd/mobile", "glowquad-mobile"
	case "web":
		pkg, dst = "./cmd/web", WebBuildDir+"/glowquad.wasm"
	}
	if runtime.GOOS == "windows" && target != "web" {
		dst += ".exe"
	}

	if target == "web" {
		if err := os.MkdirAll(WebBuildDir, 0775); err != nil {
			return err, 1
		}
	}

	cmd := exec.Command(
		"go",
		"build",
		"-o", dst,
		"-tags="+tags,
		"-gcflags=all="+gcFlags,
	)

	if settings["no-vcs"] {
		cmd.Args = append(cmd.Args, "-buildvcs=false")
	}

	cmd.Args = append(cmd.Args, pkg)

	if target == "web" {
		cmd.Env = append(cmd.Env, os.Environ()...)
		cmd.Env = append(cmd.Env, "GOOS=js")
		cmd.Env = append(cmd.Env, "GOARCH=wasm")
	}

	if err, errcode := RunCommand(cmd); err != nil {
		return err, errcode
	}

	if target != "web" {
		return nil, 0
	}

	if settings["wasm-opt"] {
		misc.InfoLogger.Printf("optimizing using wasm-opt")
		// check if wasm-opt exists
		if !misc.CheckExeExists("wasm-opt") {
			return fmt.Errorf("couldn't find wasm-opt"), 1
		}

		cmd := exec.Command(
			"wasm-opt",
			dst,
			"-O2",
			"--enable-bulk-memory-opt",
			"-o",
			WebBuildDir+"/glowquad-opt.wasm",
		)

		if err, errcode := RunCommand(cmd); err != nil {
			return err, errcode
		}

		err := os.Rename(dst, dst+".bak")
		if err != nil {
			return err, 1
		}
		err = os.Rename(WebBuildDir+"/glowquad-opt.wasm", dst)
		if err != nil {
			return err, 1
		}
	}

	return CopyWebFiles()
}

// CopyWebFiles puts the page and the wasm loader next to the wasm binary.
func CopyWebFiles() (error, int) {
	out, err := exec.Command("go", "env", "GOROOT").Output()
	if err != nil {
		return fmt.Errorf("couldn't find GOROOT: %w", err), 1
	}
	goroot := strings.TrimSpace(string(out))

	wasmExec := ""
	for _, dir := range []string{"lib/wasm", "misc/wasm"} {
		path := filepath.Join(goroot, dir, "wasm_exec.js")
		if exists, err := misc.CheckFileExists(path); err != nil {
			return err, 1
		} else if exists {
			wasmExec = path
			break
		}
	}
	if wasmExec == "" {
		return fmt.Errorf("couldn't find wasm_exec.js in %s", goroot), 1
	}

	copies := [][2]string{
		{"./web/index.html", WebBuildDir + "/index.html"},
		{wasmExec, WebBuildDir + "/wasm_exec.js"},
	}

	for _, c := range copies {
		if !NeedToBuild([]string{c[1]}, []string{c[0]}) {
			continue
		}
		misc.InfoLogger.Printf("copying %s to %s", c[0], c[1])
		if err := misc.CopyFile(c[0], c[1], 0664); err != nil {
			return err, 1
		}
	}

	return nil, 0
}

func NeedToBuild(targets []string, srcs []string) bool {
	// if any of the targets don't exist,
	// we definitely need to build it
	for _, target := range targets {
		if exists, err := misc.CheckFileExists(target); err != nil {
			misc.ErrLogger.Fatalf("failed to check if %s exists: %v", target, err)
		} else if !exists {
			return true
		}
	}

	var srcNewest time.Time
	var targetOldest time.Time

	var srcNewestSet bool = false
	var targetOldestSet bool = false

	for _, src := range srcs {
		info, err := os.Stat(src)
		if err != nil {
			misc.ErrLogger.Fatalf("failed to check mod time of %s: %v", src, err)
		}
		modTime := info.ModTime()

		if !srcNewestSet {
			srcNewest = modTime
			srcNewestSet = true
		} else if srcNewest.Compare(modTime) < 0 {
			srcNewest = modTime
		}
	}

	for _, target := range targets {
		info, err := os.Stat(target)
		if err != nil {
			misc.ErrLogger.Fatalf("failed to check mod time of %s: %v", target, err)
		}
		modTime := info.ModTime()

		if !targetOldestSet {
			targetOldest = modTime
			targetOldestSet = true
		} else if targetOldest.Compare(modTime) > 0 {
			targetOldest = modTime
		}
	}

	return srcNewest.Compare(targetOldest) > 0
}
