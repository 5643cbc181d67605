// Package safe_close 提供进程内组件的协同关闭
// Package safe_close coordinates shutdown across long-running components.
package safe_close

import "sync"

// SafeClose fans a single close signal out to every attached component and
// waits for all of them to finish.
// SafeClose 将关闭信号广播给所有注册的组件，并等待它们全部退出
type SafeClose struct {
	mu          sync.Mutex
	closeSignal chan struct{}
	closed      bool
	err         error
	wg          sync.WaitGroup
}

func NewSafeClose() *SafeClose {
	return &SafeClose{
		closeSignal: make(chan struct{}),
	}
}

// Attach runs f in its own goroutine. f must call done when it has fully
// stopped and must return promptly after closeSignal fires.
// Attach 在独立协程中运行 f。f 停止后必须调用 done，收到 closeSignal 后需尽快返回
func (s *SafeClose) Attach(f func(done func(), closeSignal <-chan struct{})) {
	s.wg.Add(1)
	done := func() { s.wg.Done() }
	go f(done, s.closeSignal)
}

// SendCloseSignal triggers shutdown; the first error wins, later calls are no-ops
// SendCloseSignal 触发关闭；只记录第一个错误，后续调用为空操作
func (s *SafeClose) SendCloseSignal(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.err = err
	close(s.closeSignal)
}

// WaitClosed blocks until every attached component called done
// WaitClosed 阻塞直到所有组件都调用了 done
func (s *SafeClose) WaitClosed() error {
	s.wg.Wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
