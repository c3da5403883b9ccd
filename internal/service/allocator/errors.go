package allocator

import "errors"

// ErrCounterUnavailable - счетчик недоступен даже после ретраев. Создание
// накладной без номера невозможно, вызывающий обязан прервать операцию.
var ErrCounterUnavailable = errors.New("docket counter unavailable")
