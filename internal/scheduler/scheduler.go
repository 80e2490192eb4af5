package scheduler

import "errors"

// ErrSyncRunning é devolvido quando uma execução encontra outra em andamento
var ErrSyncRunning = errors.New("sincronização já em andamento")
