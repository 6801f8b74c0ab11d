package internal

import (
	"log"
	"os"
	"os/user"
	"regexp"
	"sort"
	"strings"

	"github.com/earthboundkid/versioninfo/v2"
)

func ShowVersion() {
	log.Printf("Version: %s\n", versioninfo.Short())
}

// EnvironmentVars logs the process environment with secrets masked.
func EnvironmentVars() {
	log.Println("Environment variables")

	sensitiveRegex := regexp.MustCompile(`(?i)(PASSWORD|API_KEY|ACCESS_KEY|SECRET|TOKEN)`)
	environ := os.Environ()
	sort.Slice(environ, func(i, j int) bool {
		keyI, _, _ := strings.Cut(environ[i], "=")
		keyJ, _, _ := strings.Cut(environ[j], "=")
		return keyI < keyJ
	})

	for _, entry := range environ {
		key, value, _ := strings.Cut(entry, "=")
		if sensitiveRegex.MatchString(key) {
			log.Printf("  %s: ********\n", key)
		} else {
			log.Printf("  %s: %s\n", key, value)
		}
	}
}

func UserInfo(assetRoot string) {
	log.Printf("PID: %d", os.Getpid())
	if currentUser, err := user.Current(); err != nil {
		log.Printf("Error getting current user: %v", err)
	} else {
		log.Printf("User: uid=%s(%s) gid=%s", currentUser.Uid, currentUser.Username, currentUser.Gid)
	}
	if wd, err := os.Getwd(); err == nil {
		log.Printf("Working directory: %s", wd)
	}
	log.Printf("Asset root: %s", assetRoot)
}
