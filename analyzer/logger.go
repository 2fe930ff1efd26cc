package analyzer

import "github.com/sirupsen/logrus"

var log = logrus.WithField("module", "analyzer")
