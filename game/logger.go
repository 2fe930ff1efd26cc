package game

import "github.com/sirupsen/logrus"

var log = logrus.WithField("module", "game")
