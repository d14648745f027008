package services

import (
	"ToteSonar/internal/config"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Janitor periodically reconciles the photo rows with the files on disk.
// It always reports rows whose files are gone and files no row points
// to; it only deletes the orphaned files when remove_orphans is enabled.
type Janitor struct {
	photoService  PhotoService
	configuration *config.Configuration
	logService    LogService
	cleaning      bool
	mutex         sync.Mutex
	cron          *cron.Cron
}

func NewJanitorService(
	photoService PhotoService,
	logService LogService,
	configuration *config.Configuration,
) *Janitor {
	return &Janitor{
		photoService:  photoService,
		logService:    logService,
		cleaning:      false,
		mutex:         sync.Mutex{},
		configuration: configuration,
		cron:          cron.New(),
	}
}

func (j *Janitor) ForceStartCleanCycle() error {
	j.mutex.Lock()
	if j.cleaning {
		j.mutex.Unlock()
		return errors.New("cleaning is in progress")
	}
	j.cleaning = true
	j.mutex.Unlock()

	go func() {
		defer func() {
			j.mutex.Lock()
			j.cleaning = false
			j.mutex.Unlock()
		}()
		j.startClean(true)
	}()

	return nil
}

func (j *Janitor) StartCleanCycle() {
	j.logService.Log.Debug("starting cleaning job")
	j.mutex.Lock()
	if j.cleaning {
		j.mutex.Unlock()
		return
	}
	j.mutex.Unlock()

	cronSchedule := j.configuration.Janitor.Schedule
	_, err := j.cron.AddFunc(cronSchedule, func() {
		j.mutex.Lock()
		if j.cleaning {
			j.mutex.Unlock()
			return
		}
		j.cleaning = true
		j.mutex.Unlock()

		defer func() {
			j.mutex.Lock()
			j.cleaning = false
			j.mutex.Unlock()
		}()
		j.startClean(false)
	})

	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":   "clean",
			"error": err.Error(),
		}).Error("Failed to start cleaning job")
	}
	j.cron.Start()
}

func (j *Janitor) StopClean() {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	j.cron.Stop()

	if !j.cleaning {
		return
	}
	j.cleaning = false
	j.logService.Log.WithFields(logrus.Fields{
		"job":    "clean",
		"status": "stopped",
	}).Info("Janitor clean stopped")
}

func (j *Janitor) IsCleaning() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	return j.cleaning
}

func (j *Janitor) startClean(forced bool) {
	var logFields logrus.Fields
	if !forced {
		logFields = logrus.Fields{
			"job":    "clean",
			"status": "start",
			"cron":   j.configuration.Janitor.Schedule,
		}
	} else {
		logFields = logrus.Fields{
			"job":    "clean",
			"status": "forced",
		}
	}
	j.logService.Log.WithFields(logFields).Info("Photo reconciliation started")

	photos, err := j.photoService.GetAllPhotos()
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":    "clean",
			"status": "error",
			"error":  err.Error(),
		}).Error("Failed to list photos")
		return
	}

	referenced := make(map[string]bool, len(photos)*2)
	var missing int
	for i := range photos {
		for _, relPath := range []string{photos[i].OriginalPath, photos[i].ThumbnailPath} {
			referenced[filepath.Base(relPath)] = true
			fullPath := filepath.Join(j.configuration.Storage.DataDir, relPath)
			if _, statErr := os.Stat(fullPath); statErr != nil {
				missing++
				j.logService.Log.WithFields(logrus.Fields{
					"job":     "clean",
					"status":  "missing-file",
					"photoId": photos[i].ID,
					"path":    relPath,
				}).Warn("Photo row references a file that does not exist")
			}
		}
	}

	orphans := j.collectOrphans(referenced)
	if j.configuration.Janitor.RemoveOrphans {
		var removed int
		for _, orphan := range orphans {
			if err := os.Remove(orphan); err != nil {
				j.logService.Log.WithFields(logrus.Fields{
					"job":    "clean",
					"status": "error",
					"error":  err.Error(),
					"path":   orphan,
				}).Error("Failed to remove orphaned file")
				continue
			}
			removed++
		}
		if removed > 0 {
			j.logService.Log.WithFields(logrus.Fields{
				"job":    "clean",
				"status": "success",
				"count":  removed,
			}).Info("Removed orphaned files")
		}
	}

	j.logService.Log.WithFields(logrus.Fields{
		"job":     "clean",
		"status":  "finished",
		"missing": missing,
		"orphans": len(orphans),
	}).Info(fmt.Sprintf("Checked %d photos", len(photos)))
}

// collectOrphans returns the full paths of files in uploads/ and
// thumbnails/ that no photo row references.
func (j *Janitor) collectOrphans(referenced map[string]bool) []string {
	var orphans []string
	for _, folder := range []string{"uploads", "thumbnails"} {
		dir := filepath.Join(j.configuration.Storage.DataDir, folder)
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || referenced[entry.Name()] {
				continue
			}
			j.logService.Log.WithFields(logrus.Fields{
				"job":    "clean",
				"status": "orphan",
				"path":   filepath.Join(folder, entry.Name()),
			}).Warn("File on disk has no photo row")
			orphans = append(orphans, filepath.Join(dir, entry.Name()))
		}
	}
	return orphans
}
