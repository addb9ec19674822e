package resume

import "github.com/khoahotran/resume-builder/internal/domain/resume"

// now is swapped by tests that need a deterministic clock.
var now = resume.Now
